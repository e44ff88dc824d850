// Package dpath splits and joins delimited paths such as "person.address.city".
//
// A path is a sequence of segments separated by a delimiter, "." unless
// told otherwise.  Splitting never fails and never drops empty segments:
// "a..b" has three segments, the middle one empty.  A segment made only of
// ASCII digits is also an array index.
//
//	segs := dpath.Split("items/0/name", "/")
//	segs[1].IsIndex // true
//	segs[1].Index   // 0
//
// # Path lists
//
// Match implements the convention used by include and exclude lists:
//
//	"a.b"   matches a.b and everything below it
//	"a.b."  matches only what is strictly below a.b
//	".b"    matches a b segment at any depth, and everything below it
package dpath
