package main

import (
	"fmt"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path := args[0]
	val, err := cfg.getish(cc, cfg.String, cfg.File, args[1])
	if err != nil {
		return err
	}
	opts := cfg.pathOpts()
	return cfg.eachDoc(cc, args[2:], func(doc *ir.Node) (*ir.Node, error) {
		res, err := objpath.Set(doc, path, val, opts...)
		if err != nil {
			return nil, err
		}
		if res == nil {
			theLog.Warn("path conflicts with document, skipping", "path", path)
		}
		return res, nil
	})
}
