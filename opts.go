package objpath

import (
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

type opts struct {
	delim    string
	strict   bool
	shared   bool
	keep     bool
	prefix   string
	descend  func(string, *ir.Node) bool
	includes []string
	excludes []string
}

// Option configures an operation.  Options which do not apply to an
// operation are ignored by it.
type Option func(*opts)

func mkOpts(options []Option) *opts {
	o := &opts{delim: dpath.DefaultDelim}
	for _, opt := range options {
		opt(o)
	}
	if o.delim == "" {
		o.delim = dpath.DefaultDelim
	}
	return o
}

// Delim sets the path delimiter, "." by default.
func Delim(d string) Option {
	return func(o *opts) { o.delim = d }
}

// Strict turns unresolvable paths and conflicting writes into errors.
func Strict(v bool) Option {
	return func(o *opts) { o.strict = v }
}

// Shared makes Get return the node within its argument instead of a copy.
// Callers must not modify the result.
func Shared(v bool) Option {
	return func(o *opts) { o.shared = v }
}

// CleanAncestors controls whether Delete removes containers left empty by
// the deletion.  It defaults to true.
func CleanAncestors(v bool) Option {
	return func(o *opts) { o.keep = !v }
}

// Prefix is prepended to every path produced by Flat.
func Prefix(p string) Option {
	return func(o *opts) { o.prefix = p }
}

// Descend is consulted by Flat for every container below the root.  When
// it returns false the container is emitted whole instead of being
// flattened.
func Descend(f func(path string, n *ir.Node) bool) Option {
	return func(o *opts) { o.descend = f }
}

// Include restricts FormatKeys to keys whose paths match one of paths.
func Include(paths ...string) Option {
	return func(o *opts) { o.includes = append(o.includes, paths...) }
}

// Exclude keeps FormatKeys from touching keys whose paths match one of
// paths.
func Exclude(paths ...string) Option {
	return func(o *opts) { o.excludes = append(o.excludes, paths...) }
}
