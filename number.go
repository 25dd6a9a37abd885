package toyjson

import (
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

// Number is a JSON number. It holds an int64 when its lexeme had neither a
// fractional part nor an exponent and fit into 64 bits, a float64 otherwise.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// IntNumber returns an integer Number.
func IntNumber(i int64) Number {
	return Number{i: i}
}

// FloatNumber returns a floating-point Number.
func FloatNumber(f float64) Number {
	return Number{isFloat: true, f: f}
}

// IsInt reports whether n is an integer Number.
func (n Number) IsInt() bool {
	return !n.isFloat
}

// Int64 returns the integer value of n. The second result is false for
// floating-point Numbers.
func (n Number) Int64() (int64, bool) {
	if n.isFloat {
		return 0, false
	}
	return n.i, true
}

// Float64 returns n as a float64, converting integers.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// parseNumber converts a lexeme already checked against the number grammar.
// Integers that overflow int64 fall back to float64.
func parseNumber(lexeme string, isFloat bool) (Number, error) {
	if !isFloat {
		if i, err := fastfloat.ParseInt64(lexeme); err == nil {
			return IntNumber(i), nil
		}
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Number{}, err
	}
	return FloatNumber(f), nil
}
