package libdiff

import (
	"fmt"

	"github.com/signadot/objpath/ir"
)

// ToNode renders changes as an array of objects with fields op, path,
// from and to.
func ToNode(changes []Change) *ir.Node {
	res := ir.Array()
	for _, c := range changes {
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(c.Op.String())},
			{Key: "path", Val: ir.FromString(c.Path)},
		}
		if c.From != nil {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From.Clone()})
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To.Clone()})
		}
		res.Append(ir.FromKeyVals(kvs))
	}
	return res
}

// FromNode is the inverse of ToNode.
func FromNode(node *ir.Node) ([]Change, error) {
	if node == nil || node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: changes must be an array", ErrChange)
	}
	res := make([]Change, len(node.Values))
	for i, v := range node.Values {
		if v.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: change %d is a %s", ErrChange, i, v.Type)
		}
		c := &res[i]
		op := ir.Get(v, "op")
		if op == nil || op.Type != ir.StringType {
			return nil, fmt.Errorf("%w: change %d has no op", ErrChange, i)
		}
		if err := c.Op.UnmarshalText([]byte(op.String)); err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
		if p := ir.Get(v, "path"); p != nil && p.Type == ir.StringType {
			c.Path = p.String
		} else if c.Op != Reset {
			return nil, fmt.Errorf("%w: change %d has no path", ErrChange, i)
		}
		c.From = ir.Get(v, "from").Clone()
		c.To = ir.Get(v, "to").Clone()
		if c.To == nil && (c.Op == Insert || c.Op == Replace) {
			return nil, fmt.Errorf("%w: %s has no value", ErrChange, c)
		}
	}
	return res, nil
}
