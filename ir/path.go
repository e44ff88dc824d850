package ir

import (
	"strconv"
	"strings"
)

// Path returns the delimited path of y from its root, joining object
// fields and array indices with delim.  The root has the empty path.
func (y *Node) Path(delim string) string {
	var parts []string
	for x := y; x.Parent != nil; x = x.Parent {
		switch x.Parent.Type {
		case ObjectType:
			parts = append(parts, x.ParentField)
		case ArrayType:
			parts = append(parts, strconv.Itoa(x.ParentIndex))
		default:
			panic("parent but not in container")
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, delim)
}
