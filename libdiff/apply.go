package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

var ErrChange = errors.New("bad change")

// Apply returns a copy of node with changes applied.  Deletions are
// applied first, last to first, so that array indices stay valid.  The
// remaining changes follow in order.
//
// Containers left empty by the deletions are kept while the other changes
// are applied, so array elements do not shift under them.  Afterwards an
// empty ancestor of a deleted path is removed unless a change wrote it.
func Apply(node *ir.Node, changes []Change, delim string) (*ir.Node, error) {
	res := node.Clone()
	written := map[string]bool{}
	for i := len(changes) - 1; i >= 0; i-- {
		c := &changes[i]
		if c.Op != Delete {
			continue
		}
		res = objpath.Delete(res, c.Path, objpath.Delim(delim), objpath.CleanAncestors(false))
	}
	for i := range changes {
		c := &changes[i]
		switch c.Op {
		case Delete:
		case Reset:
			res = c.To.Clone()
		case Insert, Replace:
			next, err := objpath.Set(res, c.Path, c.To, objpath.Delim(delim), objpath.Strict(true))
			if err != nil {
				return nil, fmt.Errorf("error applying %s: %w", c, err)
			}
			res = next
			written[c.Path] = true
		default:
			return nil, fmt.Errorf("%w: %s", ErrChange, c)
		}
	}
	for i := len(changes) - 1; i >= 0; i-- {
		c := &changes[i]
		if c.Op != Delete {
			continue
		}
		res = prune(res, dpath.Split(c.Path, delim), written, delim)
	}
	return res, nil
}

// prune removes the empty ancestors of segs, deepest first, stopping at
// the first one which is not empty or which was written.
func prune(res *ir.Node, segs []dpath.Segment, written map[string]bool, delim string) *ir.Node {
	for n := len(segs) - 1; n > 0; n-- {
		p := dpath.Join(segs[:n], delim)
		if written[p] {
			return res
		}
		anc, _ := objpath.Get(res, p, objpath.Delim(delim), objpath.Shared(true))
		if anc == nil || anc.Type.IsLeaf() || anc.Len() != 0 {
			return res
		}
		res = objpath.Delete(res, p, objpath.Delim(delim), objpath.CleanAncestors(false))
	}
	return res
}
