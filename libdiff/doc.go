// Package libdiff computes and applies path level differences between
// two structures.
//
// A difference is a list of changes, each addressing one path of the
// flattened form of the structures (see objpath.Flat).  The paths of the
// two sides are aligned with a sequence diff, so that keys which remain
// keep their relative order.
package libdiff
