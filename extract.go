package objpath

import (
	"fmt"

	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// Selector copies the value at Src to Dest in the result of Extract.
type Selector struct {
	Dest string
	Src  string
}

func (s Selector) String() string {
	if s.Dest == s.Src {
		return s.Src
	}
	return s.Dest + "=" + s.Src
}

// Paths returns selectors which keep each path where it is.
func Paths(paths ...string) []Selector {
	res := make([]Selector, len(paths))
	for i, p := range paths {
		res[i] = Selector{Dest: p, Src: p}
	}
	return res
}

// Remap returns selectors from an object whose keys are destination paths
// and whose values are source paths, in the order of the object.
func Remap(m *ir.Node) ([]Selector, error) {
	if m == nil || m.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: remap must be an object", ErrBadSelector)
	}
	res := make([]Selector, len(m.Values))
	for i, v := range m.Values {
		dest := m.Fields[i].String
		if v.Type != ir.StringType {
			return nil, fmt.Errorf("%w: %q maps to %s, not a path", ErrBadSelector, dest, v.Type)
		}
		res[i] = Selector{Dest: dest, Src: v.String}
	}
	return res, nil
}

// Extract builds a new object from the values of node selected by sels,
// applied in order.
//
// A missing source is skipped, or reported as a *PathNotFoundError in
// strict mode.  Writing the same destination twice, or a destination which
// cannot be set in the result so far, fails the whole extraction: the
// result is nil, or a *PathConflictError in strict mode.
func Extract(node *ir.Node, sels []Selector, options ...Option) (*ir.Node, error) {
	o := mkOpts(options)
	acc := ir.Object()
	seen := make(map[string]bool, len(sels))
	for _, sel := range sels {
		src := dpath.Split(sel.Src, o.delim)
		v, n := walk(node, src)
		if n < len(src) {
			if debug.Extract() {
				debug.Logf("extract %s: source missing\n", sel)
			}
			if o.strict {
				return nil, &PathNotFoundError{Path: dpath.Join(src[:n+1], o.delim)}
			}
			continue
		}
		dest := dpath.Split(sel.Dest, o.delim)
		var err *PathConflictError
		if seen[sel.Dest] {
			prev, _ := walk(acc, dest)
			err = &PathConflictError{Path: sel.Dest, Kind: prev.Type}
		} else {
			acc, err = assign(acc, dest, v.Clone(), o.delim)
		}
		if err != nil {
			if debug.Extract() {
				debug.Logf("extract %s: %v\n", sel, err)
			}
			if o.strict {
				return nil, err
			}
			return nil, nil
		}
		seen[sel.Dest] = true
	}
	return acc, nil
}
