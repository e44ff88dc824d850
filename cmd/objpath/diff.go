package main

import (
	"fmt"

	"github.com/signadot/objpath/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := cfg.getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.getObjFile(cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(from, to, cfg.delim())
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if len(changes) == 0 {
		return nil
	}
	if err := cfg.output(cc, libdiff.ToNode(changes)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
