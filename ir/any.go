package ir

// ToAny converts a tree to plain Go values: map[string]any for objects,
// []any for arrays, int64 or float64 for numbers (the literal string when
// neither fits), string, bool and nil.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			if _, ok := res[f.String]; ok {
				continue
			}
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		}
		return y.Number
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	}
	return nil
}
