package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y detached from any parent.  Clone of a
// nil node is nil.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := y.CloneTo(&Node{})
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

// Array returns an empty array node.
func Array() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

// FromMap builds an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs.  A nil Val is
// stored as null.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i := y.FieldIndex(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in object y, or -1.
func (y *Node) FieldIndex(field string) int {
	for i, yf := range y.Fields {
		if yf.String == field {
			return i
		}
	}
	return -1
}

// Put sets field to v in object y, replacing an existing value in place or
// appending a new field.
func (y *Node) Put(field string, v *Node) {
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentField = field
	if i := y.FieldIndex(field); i >= 0 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	v.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      field,
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
	})
	y.Values = append(y.Values, v)
}

// Append adds v to the end of array y.
func (y *Node) Append(v *Node) {
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// SetIndex stores v at index i of array y, padding with nulls as needed.
// The padding is not bounded; callers taking i from input must bound it.
func (y *Node) SetIndex(i int, v *Node) {
	for len(y.Values) < i {
		y.Append(Null())
	}
	if i == len(y.Values) {
		y.Append(v)
		return
	}
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = ""
	y.Values[i] = v
}

// RemoveAt removes the i'th entry of object or array y, shifting later
// entries down.
func (y *Node) RemoveAt(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
	if y.Type == ObjectType {
		y.Fields = slices.Delete(y.Fields, i, i+1)
	}
	y.reindex(i)
}

func (y *Node) reindex(from int) {
	for j := from; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
		if y.Type == ObjectType {
			y.Fields[j].ParentIndex = j
		}
	}
}

// Len is the number of entries of a container, 0 for leaves.
func (y *Node) Len() int {
	if y == nil || y.Type.IsLeaf() {
		return 0
	}
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
