// Package ir provides the in-memory representation of structured documents
// manipulated by objpath.
//
// # Overview
//
// A document is a tree of *Node.  The IR is a recursive tagged union: the
// Type field says which of the other fields carry the value.
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64 or, for literals fitting neither, Number
//   - StringType: String
//   - ObjectType: Fields[i] is the key (a StringType node) of Values[i]
//   - ArrayType: Values
//
// Object keys are unique and keep insertion order.  The absent value is the
// nil *Node; a JSON null is a NullType node and counts as present.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("ada")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
//	})
//
// Put, Append, SetIndex and RemoveAt edit containers in place and keep the
// Parent, ParentIndex and ParentField back-links consistent.  Clone makes a
// detached deep copy.
//
// # Conversion
//
// FromAny and ToAny convert to and from the plain values produced by
// encoding/json.  MarshalJSON and UnmarshalJSON encode the node structure
// itself (type, fields, values), which is useful for debugging.
//
// # Related Packages
//
//   - github.com/signadot/objpath/ir/dpath - delimited paths
//   - github.com/signadot/objpath/parse - text to IR
//   - github.com/signadot/objpath/encode - IR to text
package ir
