package main

import (
	"fmt"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/eval"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func flat(cfg *FlatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flat.Parse(cc, args)
	if err != nil {
		cfg.Flat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := cfg.pathOpts(objpath.Prefix(cfg.Prefix))
	if cfg.Descend != "" {
		pred, err := eval.Predicate(cfg.Descend, cfg.delim())
		if err != nil {
			return fmt.Errorf("%w: -descend: %w", cli.ErrUsage, err)
		}
		opts = append(opts, objpath.Descend(pred))
	}
	return cfg.eachDoc(cc, args, func(doc *ir.Node) (*ir.Node, error) {
		return objpath.Flat(doc, opts...), nil
	})
}

func unflat(cfg *UnflatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unflat.Parse(cc, args)
	if err != nil {
		cfg.Unflat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := cfg.pathOpts()
	return cfg.eachDoc(cc, args, func(doc *ir.Node) (*ir.Node, error) {
		return objpath.Unflat(doc, opts...)
	})
}
