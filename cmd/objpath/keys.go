package main

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.List {
		for _, name := range slices.Sorted(maps.Keys(objpath.Presets)) {
			fmt.Fprintln(cc.Out, name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires a preset or a pattern", cli.ErrUsage)
	}
	opts := cfg.pathOpts(objpath.Include(cfg.Includes...), objpath.Exclude(cfg.Excludes...))
	var fn func(*ir.Node, ...objpath.Option) *ir.Node
	if preset, ok := objpath.Presets[args[0]]; ok && cfg.Case == "" {
		fn = preset
	} else {
		re, err := regexp.Compile(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		caser, err := caseFunc(cfg.Case)
		if err != nil {
			return err
		}
		fn = func(n *ir.Node, o ...objpath.Option) *ir.Node {
			return objpath.FormatKeys(n, re, caser, o...)
		}
	}
	return cfg.eachDoc(cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return fn(doc, opts...), nil
	})
}

func caseFunc(name string) (func(string) string, error) {
	var c cases.Caser
	switch name {
	case "upper", "":
		c = cases.Upper(language.Und)
	case "lower":
		c = cases.Lower(language.Und)
	case "title":
		c = cases.Title(language.Und)
	default:
		return nil, fmt.Errorf("%w: unknown case %q", cli.ErrUsage, name)
	}
	return c.String, nil
}
