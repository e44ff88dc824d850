package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return cfg.eachDoc(cc, args, func(doc *ir.Node) (*ir.Node, error) {
		d, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error marshalling IR: %w", err)
		}
		return parse.Parse(d, parse.ParseJSON())
	})
}
