package gomap

import (
	"math"
	"strconv"
	"strings"

	"github.com/signadot/graphmap/ir"
)

func toString(n *ir.Node) (string, bool) {
	switch n.Type {
	case ir.StringType:
		return n.String, true
	case ir.NumberType:
		if n.Number != "" {
			return n.Number, true
		}
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10), true
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64), true
		}
	case ir.BoolType:
		return strconv.FormatBool(n.Bool), true
	}
	return "", false
}

func toInt(n *ir.Node) (int, bool) {
	var f float64
	switch n.Type {
	case ir.NumberType:
		if n.Int64 != nil {
			return intFrom64(*n.Int64)
		}
		if n.Float64 == nil {
			return 0, false
		}
		f = *n.Float64
	case ir.StringType:
		s := strings.TrimSpace(n.String)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return intFrom64(i)
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return intFrom64(int64(f))
}

func intFrom64(i int64) (int, bool) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func toFloat(n *ir.Node) (float64, bool) {
	switch n.Type {
	case ir.NumberType:
		if n.Float64 != nil {
			return *n.Float64, true
		}
		if n.Int64 != nil {
			return float64(*n.Int64), true
		}
	case ir.StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.String), 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f, true
		}
	}
	return 0, false
}

func toBool(n *ir.Node) (bool, bool) {
	switch n.Type {
	case ir.BoolType:
		return n.Bool, true
	case ir.StringType:
		b, err := strconv.ParseBool(strings.TrimSpace(n.String))
		if err == nil {
			return b, true
		}
	}
	return false, false
}
