package ir

import (
	"encoding/json"
	"fmt"
)

// ToAny converts y to plain Go values: map[string]any, []any, string,
// bool, int64, float64, json.Number or nil. Object key order is lost.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		default:
			return json.Number(y.Number)
		}
	default:
		return nil
	}
}

// FromAny converts plain Go values into a node. Maps are converted with
// their keys sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromNumber(fmt.Sprint(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromNumber(fmt.Sprint(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case []any:
		res := Array()
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		vals := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[k] = n
		}
		return FromMap(vals), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrType, v)
	}
}
