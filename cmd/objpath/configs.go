package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/format"
	"github.com/signadot/objpath/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Delim   string `cli:"name=d aliases=delim desc='path delimiter (default .)'"`
	Strict  bool   `cli:"name=strict desc='fail on missing paths and conflicts'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Root    string `cli:"name=C desc='resolve relative input files against this directory'"`
	Verbose bool   `cli:"name=v desc='log what is being done'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// number of documents written so far
	written int

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) pathOpts(opts ...objpath.Option) []objpath.Option {
	return append([]objpath.Option{
		objpath.Delim(cfg.Delim),
		objpath.Strict(cfg.Strict),
	}, opts...)
}

func (cfg *MainConfig) delim() string {
	if cfg.Delim == "" {
		return "."
	}
	return cfg.Delim
}

// listOpt returns an option which may be repeated, collecting its values
// in dst.
func listOpt(dst *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = append(*dst, v)
		return v, nil
	})
}

// kvOpt returns an option which may be repeated, collecting key=value
// pairs in dst.
func kvOpt(dst map[string][]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		key, val, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected key=value, got %q", cli.ErrUsage, v)
		}
		dst[key] = append(dst[key], val)
		return v, nil
	})
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='value arg as string'"`
	File   bool `cli:"name=f desc='value arg as file'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Keep bool `cli:"name=keep desc='keep containers left empty'"`

	Del *cli.Command
}

type ExtractConfig struct {
	*MainConfig
	Paths []string
	Remap string `cli:"name=m aliases=remap desc='file of an object mapping destination to source paths'"`

	Extract *cli.Command
}

type FlatConfig struct {
	*MainConfig
	Prefix  string `cli:"name=prefix desc='prefix for all paths'"`
	Descend string `cli:"name=descend desc='expression deciding which containers to flatten'"`

	Flat *cli.Command
}

type UnflatConfig struct {
	*MainConfig

	Unflat *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Includes []string
	Excludes []string
	Case     string `cli:"name=case desc='case applied to matches of a pattern: upper, lower or title'"`
	List     bool   `cli:"name=l aliases=list desc='list presets'"`

	Keys *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=m aliases=merge desc='patch is a json merge patch'"`
	Changes bool `cli:"name=c aliases=changes desc='patch is the output of diff'"`
	Reverse bool `cli:"name=r desc='apply diff output reversed'"`
	String  bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type FetchConfig struct {
	*MainConfig
	Base      string `cli:"name=base desc='base url'"`
	Endpoints string `cli:"name=endpoints desc='file of named endpoints'"`
	Method    string `cli:"name=X desc='http method (default GET)'"`
	Body      string `cli:"name=body desc='file holding the request body'"`
	Query     map[string][]string
	Header    map[string][]string

	Fetch *cli.Command
}
