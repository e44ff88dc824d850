package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{})
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "objpath").
		WithSynopsis("objpath [opts] command [opts]").
		WithDescription("objpath reads, writes and reshapes json and yaml documents by path.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return objpathMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			ExtractCommand(cfg),
			FlatCommand(cfg),
			UnflatCommand(cfg),
			KeysCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			DumpCommand(cfg),
			FetchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-s|-f] <path> <value> [files]").
		WithDescription("set the value at a path, creating containers as needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("rm", "delete").
		WithSynopsis("del [-keep] <path> [files]").
		WithDescription("delete the value at a path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "p",
		Description: "path to extract, or dest=src to move it (repeatable)",
		Type:        cli.NamedFuncOpt(listOpt(&cfg.Paths), "(selector)"),
	})
	return cli.NewCommandAt(&cfg.Extract, "extract").
		WithAliases("x").
		WithSynopsis("extract [-p sel]... [-m remap] [files]").
		WithDescription("build documents from selected paths").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
}

func FlatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Flat, "flat").
		WithAliases("f").
		WithSynopsis("flat [-prefix p] [-descend expr] [files]").
		WithDescription(flatDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flat(cfg, cc, args)
		})
}

const flatDescription = `flat maps every leaf path of a document to its value.

With -descend, containers for which the expression is false are kept
whole.  The expression sees path, key, kind, size and value, for example

  objpath flat -descend 'kind == "object"' endpoints.yaml`

func UnflatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnflatConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unflat, "unflat").
		WithAliases("u").
		WithSynopsis("unflat [files]").
		WithDescription("rebuild documents from flat path maps").
		WithRun(func(cc *cli.Context, args []string) error {
			return unflat(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "i",
			Description: "only rewrite keys at or below this path (repeatable)",
			Type:        cli.NamedFuncOpt(listOpt(&cfg.Includes), "(path)"),
		},
		&cli.Opt{
			Name:        "x",
			Description: "do not rewrite keys at or below this path (repeatable)",
			Type:        cli.NamedFuncOpt(listOpt(&cfg.Excludes), "(path)"),
		})
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [-i path]... [-x path]... <preset|pattern> [files]").
		WithDescription(keysDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

const keysDescription = `keys rewrites object keys.

The first argument is either a preset (see -l) or a regular expression
whose matches are changed to the case given by -case.  Paths given to -i
and -x match themselves and everything below; a trailing delimiter
matches only below and a leading one matches at any depth.`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge a b [more...]").
		WithDescription("deep merge objects from left to right").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] a b").
		WithDescription("list the path changes from a to b, exiting 1 if there are any").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-m|-c [-r]] [-s] <patch> [files]").
		WithDescription("apply a json patch, a json merge patch (-m) or diff output (-c)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump IR").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func FetchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FetchConfig{
		MainConfig: mainCfg,
		Query:      map[string][]string{},
		Header:     map[string][]string{},
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "q",
			Description: "query parameter (repeatable)",
			Type:        cli.NamedFuncOpt(kvOpt(cfg.Query), "(key=val)"),
		},
		&cli.Opt{
			Name:        "H",
			Description: "request header (repeatable)",
			Type:        cli.NamedFuncOpt(kvOpt(cfg.Header), "(key=val)"),
		})
	return cli.NewCommandAt(&cfg.Fetch, "fetch").
		WithSynopsis("fetch -base url -endpoints file [opts] <endpoint> [param=val]...").
		WithDescription("call a named json endpoint").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fetchMain(cfg, cc, args)
		})
}
