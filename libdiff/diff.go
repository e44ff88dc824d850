package libdiff

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/objpath"
	"github.com/signadot/objpath/ir"
)

// Diff returns the changes leading from from to to, using delim to join
// paths.  Equal structures have no changes.
func Diff(from, to *ir.Node, delim string) []Change {
	if from == nil || to == nil || from.Type.IsLeaf() || from.Type != to.Type {
		if ir.Equal(from, to) {
			return nil
		}
		return []Change{{Op: Reset, From: from.Clone(), To: to.Clone()}}
	}
	ff := objpath.Flat(from, objpath.Delim(delim))
	tf := objpath.Flat(to, objpath.Delim(delim))
	keys := map[string]rune{}
	fromRunes := mapFieldsTo(keys, ff)
	toRunes := mapFieldsTo(keys, tf)

	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: ff.Fields[fi].String, From: ff.Values[fi].Clone()})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				if !ir.Equal(ff.Values[fi], tf.Values[ti]) {
					res = append(res, Change{
						Op:   Replace,
						Path: ff.Fields[fi].String,
						From: ff.Values[fi].Clone(),
						To:   tf.Values[ti].Clone(),
					})
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Op: Insert, Path: tf.Fields[ti].String, To: tf.Values[ti].Clone()})
				ti++
			}
		}
	}
	return res
}

// mapFieldsTo assigns each distinct key a rune so the key sequences can be
// diffed as text.  Runes are taken from a private use plane so they
// survive conversion to strings.
func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = privateUse + rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

const privateUse = 0xF0000
