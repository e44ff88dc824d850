package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"

	"github.com/scott-cotton/cli"
)

// resolve returns path relative to the -C directory, if any.
func (cfg *MainConfig) resolve(path string) string {
	if path == "-" || cfg.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Root, path)
}

func (cfg *MainConfig) readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = cc.In
	} else {
		full := cfg.resolve(path)
		theLog.Debug("reading", "file", full)
		f, err := os.Open(full)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := cfg.readFile(cc, path)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}

// getDocs reads the documents of path, separated by "---" lines.
func (cfg *MainConfig) getDocs(cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := cfg.readFile(cc, path)
	if err != nil {
		return nil, err
	}
	parts := splitDocs(d)
	res := make([]*ir.Node, 0, len(parts))
	for i, part := range parts {
		node, err := parse.Parse(part, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, path, err)
		}
		res = append(res, node)
	}
	return res, nil
}

func splitDocs(d []byte) [][]byte {
	d = bytes.TrimPrefix(d, []byte("---\n"))
	parts := bytes.Split(d, []byte("\n---\n"))
	res := parts[:0]
	for _, part := range parts {
		if len(bytes.TrimSpace(part)) == 0 && len(parts) > 1 {
			continue
		}
		res = append(res, part)
	}
	return res
}

// getish returns arg parsed as a document, or arg itself as a string with
// asString, or the contents of the file arg with asFile.
func (cfg *MainConfig) getish(cc *cli.Context, asString, asFile bool, arg string) (*ir.Node, error) {
	if asString && asFile {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	switch {
	case asString:
		return ir.FromString(arg), nil
	case asFile:
		return cfg.getObjFile(cc, arg)
	}
	node, err := parse.Parse([]byte(arg), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return node, nil
}

// eachDoc calls fn on every document of files, or of standard input when
// there are no files, writing the non-nil results.
func (cfg *MainConfig) eachDoc(cc *cli.Context, files []string, fn func(*ir.Node) (*ir.Node, error)) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := cfg.getDocs(cc, file)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			res, err := fn(doc)
			if err != nil {
				return fmt.Errorf("error processing document %d of %s: %w", i, file, err)
			}
			if res == nil {
				theLog.Debug("no result", "file", file, "doc", i)
				continue
			}
			if err := cfg.output(cc, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *MainConfig) output(cc *cli.Context, node *ir.Node) error {
	if cfg.written > 0 {
		if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
			return fmt.Errorf("unable to write separator: %w", err)
		}
	}
	cfg.written++
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// params parses key=value arguments.
func params(args []string) (map[string]string, error) {
	res := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected key=value, got %q", cli.ErrUsage, arg)
		}
		res[k] = v
	}
	return res, nil
}
