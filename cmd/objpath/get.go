package main

import (
	"fmt"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	opts := cfg.pathOpts(objpath.Shared(true))
	return cfg.eachDoc(cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return objpath.Get(doc, path, opts...)
	})
}
