package ir

// Equal reports whether a and b hold the same data. Numbers are equal when
// their values are, whatever their representation, so an integral float
// equals the corresponding int. Object keys must be in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NumberType:
		if fa, ok := a.float(); ok {
			if fb, ok := b.float(); ok {
				return fa == fb
			}
			return false
		}
		if _, ok := b.float(); ok {
			return false
		}
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case BoolType:
		return a.Bool == b.Bool
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (y *Node) float() (float64, bool) {
	switch {
	case y.Int64 != nil:
		return float64(*y.Int64), true
	case y.Float64 != nil:
		return *y.Float64, true
	}
	return 0, false
}
