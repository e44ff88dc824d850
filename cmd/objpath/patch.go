package main

import (
	"fmt"

	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/jpatch"
	"github.com/signadot/objpath/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if cfg.Merge && cfg.Changes {
		return fmt.Errorf("%w: only one of -m, -c may be specified", cli.ErrUsage)
	}
	if cfg.Reverse && !cfg.Changes {
		return fmt.Errorf("%w: -r requires -c", cli.ErrUsage)
	}
	var p *ir.Node
	if cfg.String {
		p, err = cfg.getish(cc, false, false, args[0])
	} else {
		p, err = cfg.getObjFile(cc, args[0])
	}
	if err != nil {
		return err
	}
	fn, err := cfg.patcher(p)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args[1:], fn)
}

func (cfg *PatchConfig) patcher(p *ir.Node) (func(*ir.Node) (*ir.Node, error), error) {
	switch {
	case cfg.Merge:
		return func(doc *ir.Node) (*ir.Node, error) {
			return jpatch.MergePatch(doc, p)
		}, nil
	case cfg.Changes:
		changes, err := libdiff.FromNode(p)
		if err != nil {
			return nil, err
		}
		if cfg.Reverse {
			changes = libdiff.Reverse(changes)
		}
		delim := cfg.delim()
		return func(doc *ir.Node) (*ir.Node, error) {
			return libdiff.Apply(doc, changes, delim)
		}, nil
	default:
		jp, err := jpatch.Decode(p)
		if err != nil {
			return nil, err
		}
		theLog.Debug("decoded patch", "ops", jp.Len())
		return jp.Apply, nil
	}
}
