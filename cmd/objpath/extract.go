package main

import (
	"fmt"
	"strings"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		cfg.Extract.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	sels, err := cfg.selectors(cc)
	if err != nil {
		return err
	}
	if len(sels) == 0 {
		return fmt.Errorf("%w: extract requires -p or -m", cli.ErrUsage)
	}
	opts := cfg.pathOpts()
	return cfg.eachDoc(cc, args, func(doc *ir.Node) (*ir.Node, error) {
		return objpath.Extract(doc, sels, opts...)
	})
}

func (cfg *ExtractConfig) selectors(cc *cli.Context) ([]objpath.Selector, error) {
	var res []objpath.Selector
	for _, p := range cfg.Paths {
		dest, src, ok := strings.Cut(p, "=")
		if !ok {
			res = append(res, objpath.Selector{Dest: p, Src: p})
			continue
		}
		res = append(res, objpath.Selector{Dest: dest, Src: src})
	}
	if cfg.Remap == "" {
		return res, nil
	}
	m, err := cfg.getObjFile(cc, cfg.Remap)
	if err != nil {
		return nil, err
	}
	remap, err := objpath.Remap(m)
	if err != nil {
		return nil, fmt.Errorf("error reading remap %s: %w", cfg.Remap, err)
	}
	return append(res, remap...), nil
}
