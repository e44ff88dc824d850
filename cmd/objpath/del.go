package main

import (
	"fmt"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	opts := cfg.pathOpts(objpath.CleanAncestors(!cfg.Keep))
	return cfg.eachDoc(cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return objpath.Delete(doc, path, opts...), nil
	})
}
