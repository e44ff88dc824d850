package objpath

import (
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// Get returns the value at path in node.
//
// Objects are walked by key and arrays by index.  When a segment cannot be
// resolved Get returns nil, or a *PathNotFoundError in strict mode.  A
// null found at path is a value, not an absence.
func Get(node *ir.Node, path string, options ...Option) (*ir.Node, error) {
	o := mkOpts(options)
	segs := dpath.Split(path, o.delim)
	res, n := walk(node, segs)
	if n < len(segs) {
		if debug.Get() {
			debug.Logf("get %q: stopped at segment %d\n", path, n)
		}
		if o.strict {
			return nil, &PathNotFoundError{Path: dpath.Join(segs[:n+1], o.delim)}
		}
		return nil, nil
	}
	if o.shared {
		return res, nil
	}
	return res.Clone(), nil
}

// walk follows segs from node, returning the node reached and the number
// of segments consumed.
func walk(node *ir.Node, segs []dpath.Segment) (*ir.Node, int) {
	cur := node
	for i, seg := range segs {
		next := child(cur, seg)
		if next == nil {
			return cur, i
		}
		cur = next
	}
	return cur, len(segs)
}

// child returns the entry of container n addressed by seg, or nil.
func child(n *ir.Node, seg dpath.Segment) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		return ir.Get(n, seg.Key)
	case ir.ArrayType:
		if !seg.IsIndex || seg.Index >= len(n.Values) {
			return nil
		}
		return n.Values[seg.Index]
	default:
		return nil
	}
}

// position returns the index in n.Values addressed by seg, or -1.
func position(n *ir.Node, seg dpath.Segment) int {
	switch n.Type {
	case ir.ObjectType:
		return n.FieldIndex(seg.Key)
	case ir.ArrayType:
		if seg.IsIndex && seg.Index < len(n.Values) {
			return seg.Index
		}
	}
	return -1
}
