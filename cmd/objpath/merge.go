package main

import (
	"fmt"

	"github.com/signadot/objpath"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 files, got %v", cli.ErrUsage, args)
	}
	res, err := cfg.getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		next, err := cfg.getObjFile(cc, arg)
		if err != nil {
			return err
		}
		theLog.Debug("merging", "file", arg)
		res = objpath.Merge(res, next)
	}
	return cfg.output(cc, res)
}
