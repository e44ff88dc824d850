package objpath

import (
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// MaxIndexGap is the largest number of nulls a write pads an array with.
const MaxIndexGap = 1 << 16

// Set returns a copy of node with value stored at path.
//
// Missing containers along the path are created: an array when the
// following segment is an index, an object otherwise.  Arrays are padded
// with nulls up to the index being set, and a null met along the path is
// replaced by a container.  An index more than MaxIndexGap past the end of
// its array is a conflict.  When a scalar blocks the path, or an array is
// addressed by a non-index segment, Set returns nil, or a
// *PathConflictError in strict mode.
func Set(node *ir.Node, path string, value *ir.Node, options ...Option) (*ir.Node, error) {
	o := mkOpts(options)
	segs := dpath.Split(path, o.delim)
	res, err := assign(node.Clone(), segs, value.Clone(), o.delim)
	if err != nil {
		if debug.Set() {
			debug.Logf("set %q: %v\n", path, err)
		}
		if o.strict {
			return nil, err
		}
		return nil, nil
	}
	return res, nil
}

// assign stores val at segs within root, modifying root in place, and
// returns the possibly new root.  On conflict root is left unchanged.
func assign(root *ir.Node, segs []dpath.Segment, val *ir.Node, delim string) (*ir.Node, *PathConflictError) {
	if root == nil || root.Type == ir.NullType {
		if tooFar(segs[0], 0) {
			return nil, conflict(nil, delim, ir.ArrayType)
		}
		root = container(segs[0])
	}
	cur := root
	for i, seg := range segs {
		last := i == len(segs)-1
		var next *ir.Node
		switch cur.Type {
		case ir.ObjectType:
			if last {
				cur.Put(seg.Key, val)
				return root, nil
			}
			next = ir.Get(cur, seg.Key)
			if next == nil || next.Type == ir.NullType {
				if tooFar(segs[i+1], 0) {
					return nil, conflict(segs[:i+1], delim, ir.ArrayType)
				}
				next = container(segs[i+1])
				cur.Put(seg.Key, next)
			}
		case ir.ArrayType:
			if !seg.IsIndex || tooFar(seg, len(cur.Values)) {
				return nil, conflict(segs[:i], delim, cur.Type)
			}
			if last {
				cur.SetIndex(seg.Index, val)
				return root, nil
			}
			if seg.Index < len(cur.Values) {
				next = cur.Values[seg.Index]
			}
			if next == nil || next.Type == ir.NullType {
				if tooFar(segs[i+1], 0) {
					return nil, conflict(segs[:i+1], delim, ir.ArrayType)
				}
				next = container(segs[i+1])
				cur.SetIndex(seg.Index, next)
			}
		default:
			return nil, conflict(segs[:i], delim, cur.Type)
		}
		if next.Type.IsLeaf() {
			return nil, conflict(segs[:i+1], delim, next.Type)
		}
		cur = next
	}
	return root, nil
}

// tooFar reports whether seg indexes more than MaxIndexGap past the end of
// an array of length n.
func tooFar(seg dpath.Segment, n int) bool {
	return seg.IsIndex && seg.Index-n > MaxIndexGap
}

func container(next dpath.Segment) *ir.Node {
	if next.IsIndex {
		return ir.Array()
	}
	return ir.Object()
}

func conflict(segs []dpath.Segment, delim string, t ir.Type) *PathConflictError {
	return &PathConflictError{Path: dpath.Join(segs, delim), Kind: t}
}
