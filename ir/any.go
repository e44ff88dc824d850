package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FromAny converts a plain Go value, as produced by encoding/json and
// similar decoders, into a node.  Maps become objects with sorted keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case []*Node:
		vals := make([]*Node, len(x))
		for i := range x {
			vals[i] = x[i].Clone()
		}
		return FromSlice(vals), nil
	case map[string]*Node:
		m := make(map[string]*Node, len(x))
		for k, v := range x {
			m[k] = v.Clone()
		}
		return FromMap(m), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case []any:
		res := FromSlice(nil)
		for i, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(node)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = node
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
	}
	return FromInt(int64(u))
}

// FromNumber parses a numeric literal, keeping it as an integer when it
// fits, a float when it parses as one and the raw text otherwise.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: v}
}

// ToAny converts node to plain Go values: map[string]any, []any, string,
// int, float64, bool and nil.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
