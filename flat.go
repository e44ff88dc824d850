package objpath

import (
	"strconv"

	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// Flat returns an object mapping the path of every leaf of node to a copy
// of the leaf.
//
// Empty containers are leaves, so that they survive Unflat.  A container
// for which the Descend option returns false is a leaf as well.  The
// Descend function is given the path relative to node, without Prefix.  A
// scalar node yields {prefix: node} if Prefix is set and an empty object
// otherwise.
func Flat(node *ir.Node, options ...Option) *ir.Node {
	o := mkOpts(options)
	res := ir.Object()
	if node == nil {
		return res
	}
	if node.Type.IsLeaf() {
		if o.prefix != "" {
			res.Put(o.prefix, node.Clone())
		}
		return res
	}
	flatInto(res, node, "", o)
	if debug.Flat() {
		debug.Logf("flat: %d paths\n", len(res.Values))
	}
	return res
}

func flatInto(res, n *ir.Node, rel string, o *opts) {
	for i, v := range n.Values {
		key := strconv.Itoa(i)
		if n.Type == ir.ObjectType {
			key = n.Fields[i].String
		}
		p := dpath.Append(rel, key, o.delim)
		if v.Len() == 0 || (o.descend != nil && !o.descend(p, v)) {
			res.Put(dpath.Append(o.prefix, p, o.delim), v.Clone())
			continue
		}
		flatInto(res, v, p, o)
	}
}

// Unflat rebuilds a structure from a path map as produced by Flat,
// setting each entry in order.
//
// The result is an array when the first segment of the first path is an
// index and an object otherwise.  Numeric segments always address arrays,
// so objects with numeric keys do not round trip.  An entry which
// conflicts with the entries before it is skipped, or reported as a
// *PathConflictError in strict mode.  A non-object m is returned as a
// copy.
func Unflat(m *ir.Node, options ...Option) (*ir.Node, error) {
	o := mkOpts(options)
	if m == nil {
		return nil, nil
	}
	if m.Type != ir.ObjectType {
		return m.Clone(), nil
	}
	if len(m.Values) == 0 {
		return ir.Object(), nil
	}
	acc := container(dpath.Split(m.Fields[0].String, o.delim)[0])
	for i, v := range m.Values {
		p := m.Fields[i].String
		next, err := assign(acc, dpath.Split(p, o.delim), v.Clone(), o.delim)
		if err != nil {
			if debug.Flat() {
				debug.Logf("unflat %q: %v\n", p, err)
			}
			if o.strict {
				return nil, err
			}
			continue
		}
		acc = next
	}
	return acc, nil
}
