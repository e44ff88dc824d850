// Package jpatch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to structures.
//
// Documents are converted to JSON and back, so object keys in results are
// ordered as the underlying patch library writes them.
package jpatch

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/format"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/parse"
)

// Patch is a decoded list of RFC 6902 operations.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes ops, an array of operation objects.
func Decode(ops *ir.Node) (*Patch, error) {
	if ops == nil || ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("error decoding json patch: operations must be an array")
	}
	d, err := marshal(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding json patch: %w", err)
	}
	return &Patch{ops: p}, nil
}

// Len is the number of operations in p.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the result of applying p to doc.  doc is not modified.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying json patch: %w", err)
	}
	return unmarshal(out)
}

// Apply decodes ops and applies them to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	p, err := Decode(ops)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// MergePatch applies merge patch patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	pd, err := marshal(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, pd)
	if err != nil {
		return nil, fmt.Errorf("error applying merge patch: %w", err)
	}
	return unmarshal(out)
}

// CreateMergePatch returns the merge patch taking from to to.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	fd, err := marshal(from)
	if err != nil {
		return nil, err
	}
	td, err := marshal(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("error creating merge patch: %w", err)
	}
	return unmarshal(out)
}

func marshal(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshal(d []byte) (*ir.Node, error) {
	node, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("error decoding patch result: %w", err)
	}
	return node, nil
}
