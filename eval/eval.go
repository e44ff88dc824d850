package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// Program is a compiled expression.
type Program struct {
	src   string
	delim string
	prg   *vm.Program
}

// Compile compiles src.  delim is used to split paths given to the
// program and to getpath.
func Compile(src, delim string) (*Program, error) {
	if delim == "" {
		delim = dpath.DefaultDelim
	}
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Program{src: src, delim: delim, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Eval runs p on n, found at path.
func (p *Program) Eval(path string, n *ir.Node) (*ir.Node, error) {
	res, err := expr.Run(p.prg, p.env(path, n))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q at %q: %w", p.src, path, err)
	}
	return ir.FromAny(res)
}

// Test reports whether p holds for n.  Evaluation errors count as false.
func (p *Program) Test(path string, n *ir.Node) bool {
	res, err := p.Eval(path, n)
	if err != nil {
		if debug.Eval() {
			debug.Logf("%v\n", err)
		}
		return false
	}
	return ir.Truth(res)
}

// Predicate compiles src into a test on nodes, suitable for
// objpath.Descend.
func Predicate(src, delim string) (func(path string, n *ir.Node) bool, error) {
	p, err := Compile(src, delim)
	if err != nil {
		return nil, err
	}
	return p.Test, nil
}

type env struct {
	Path    string           `expr:"path"`
	Key     string           `expr:"key"`
	Kind    string           `expr:"kind"`
	Size    int              `expr:"size"`
	Value   any              `expr:"value"`
	GetPath func(string) any `expr:"getpath"`
}

func (p *Program) env(path string, n *ir.Node) env {
	segs := dpath.Split(path, p.delim)
	kind := ir.NullType
	if n != nil {
		kind = n.Type
	}
	return env{
		Path:  path,
		Key:   segs[len(segs)-1].Key,
		Kind:  strings.ToLower(kind.String()),
		Size:  n.Len(),
		Value: ir.ToAny(n),
		GetPath: func(q string) any {
			if n == nil {
				return nil
			}
			res, _ := objpath.Get(n.Root(), q, objpath.Delim(p.delim), objpath.Shared(true))
			return ir.ToAny(res)
		},
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env{}),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
