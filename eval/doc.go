// Package eval compiles expressions over nodes of a structure.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and see the following variables:
//
//	path   the delimited path of the node
//	key    the last segment of path
//	kind   one of null, bool, number, string, array, object
//	size   the number of entries of a container, 0 otherwise
//	value  the node as a plain value
//
// and the functions getpath(p), the plain value at path p from the root
// of the node's document or nil, and getenv(name).
package eval
