package objpath

import (
	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// Delete returns a copy of node without the entry at path.  Array
// elements are spliced out.  Unless CleanAncestors(false) is given,
// containers left empty by the removal are removed in turn, stopping at
// the root.  A path which does not resolve leaves the copy unchanged.
func Delete(node *ir.Node, path string, options ...Option) *ir.Node {
	o := mkOpts(options)
	res := node.Clone()
	if res == nil {
		return nil
	}
	segs := dpath.Split(path, o.delim)
	last := len(segs) - 1
	parent, n := walk(res, segs[:last])
	if n < last {
		if debug.Delete() {
			debug.Logf("delete %q: no parent\n", path)
		}
		return res
	}
	i := position(parent, segs[last])
	if i < 0 {
		if debug.Delete() {
			debug.Logf("delete %q: no entry\n", path)
		}
		return res
	}
	parent.RemoveAt(i)
	if o.keep {
		return res
	}
	for cur := parent; cur != res && cur.Len() == 0; {
		if debug.Delete() {
			debug.Logf("delete %q: removing empty %q\n", path, cur.Path(o.delim))
		}
		up := cur.Parent
		up.RemoveAt(cur.ParentIndex)
		cur = up
	}
	return res
}
