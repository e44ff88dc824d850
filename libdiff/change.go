package libdiff

import (
	"fmt"

	"github.com/signadot/objpath/ir"
)

type Op int

const (
	Delete Op = iota
	Insert
	Replace
	// Reset replaces the whole document.  It is produced when the two
	// sides are not containers of the same kind.
	Reset
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	for _, op := range []Op{Delete, Insert, Replace, Reset} {
		if op.String() == string(d) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("%w: unknown op %q", ErrChange, d)
}

// Change is one difference.  From is nil for an Insert and To is nil for a
// Delete.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	return fmt.Sprintf("%s %q", c.Op, c.Path)
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Op: c.Op, Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Delete:
			r.Op = Insert
		case Insert:
			r.Op = Delete
		}
		res[i] = r
	}
	return res
}
