package objpath

import (
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
)

// Copy returns a deep copy of node.
func Copy(node *ir.Node) *ir.Node {
	return node.Clone()
}

// Merge returns a copy of a with b merged onto it.
//
// Objects merge key by key, recursively.  Anything else in b, arrays
// included, replaces what a holds.  A nil b yields a copy of a.
func Merge(a, b *ir.Node) *ir.Node {
	if b == nil {
		return a.Clone()
	}
	if a == nil || a.Type != ir.ObjectType || b.Type != ir.ObjectType {
		return b.Clone()
	}
	res := a.Clone()
	mergeInto(res, b)
	return res
}

// mergeInto merges object b into object dst in place.
func mergeInto(dst, b *ir.Node) {
	for i, bv := range b.Values {
		key := b.Fields[i].String
		dv := ir.Get(dst, key)
		if dv != nil && dv.Type == ir.ObjectType && bv.Type == ir.ObjectType {
			mergeInto(dv, bv)
			continue
		}
		if debug.Merge() && dv != nil {
			debug.Logf("merge: replacing %q\n", dv.Path("."))
		}
		dst.Put(key, bv.Clone())
	}
}
