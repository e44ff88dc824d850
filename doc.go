// Package objpath reads, writes, deletes, extracts, flattens and rekeys
// nested documents addressed by delimited string paths.
//
// # Overview
//
// Documents are *ir.Node trees of objects, arrays and scalars.  A path
// such as "person.address.city" walks objects by key and arrays by index:
//
//	city, err := objpath.Get(doc, "person.address.city")
//	doc2, err := objpath.Set(doc, "tags.0", ir.FromString("new"))
//	doc3 := objpath.Delete(doc, "person.address")
//
// No operation modifies its arguments.  Every returned document is a fresh
// copy owned by the caller; Get with Shared(true) is the only exception and
// returns the node inside the argument.
//
// # Strictness
//
// By default a path that cannot be resolved, or a write blocked by a
// scalar, produces a nil result and a nil error.  With Strict(true) the
// same situations return a *PathNotFoundError or a *PathConflictError
// naming the offending sub-path.
//
// # Flat documents
//
// Flat turns a document into a single object mapping paths to leaves and
// Unflat turns it back:
//
//	flat := objpath.Flat(doc) // {"total": 1, "person.age": 3}
//	doc, err := objpath.Unflat(flat)
//
// Segments made of digits always address arrays on the way back, so
// objects keyed by numeric strings do not survive the round trip.
//
// # Keys
//
// FormatKeys rewrites object keys with a regular expression, optionally
// restricted with Include and Exclude path lists.  LowerCamelToSnake and
// friends are ready made casing conversions.
//
// # Related Packages
//
//   - github.com/signadot/objpath/ir - document representation
//   - github.com/signadot/objpath/ir/dpath - path splitting and matching
//   - github.com/signadot/objpath/parse, encode - text i/o
package objpath
