package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/signadot/objpath/ir"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		if pOpts.format.IsJSON() {
			return nil, fmt.Errorf("%w: empty json document", ErrParse)
		}
		return ir.Null(), nil
	}
	if pOpts.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Put(keyString(item.Key), val)
		}
		return res, nil
	case map[string]any:
		// unordered, only when a decoder ignores UseOrderedMap
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		res := ir.Array()
		for _, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		res, err := ir.FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return res, nil
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
