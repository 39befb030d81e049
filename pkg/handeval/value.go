package handeval

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Value is the tie-break key of an evaluated hand
// A Value is either a single rank or an ordered tuple of Values, which may nest. Two pair, for
// example, is ((high pair, low pair), kicker).
type Value struct {
	n     int
	elems []Value
	tuple bool
}

// Int returns a scalar value
func Int(n int) Value {
	return Value{n: n}
}

// Tuple returns an ordered tuple of values
func Tuple(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)

	return Value{elems: cp, tuple: true}
}

// Ints returns a flat tuple of scalar values
func Ints(ns ...int) Value {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = Int(n)
	}

	return Value{elems: elems, tuple: true}
}

// IsTuple returns true if the value is a tuple
func (v Value) IsTuple() bool {
	return v.tuple
}

// Int returns the scalar, or 0 for a tuple
func (v Value) Int() int {
	return v.n
}

// Len returns the number of elements in a tuple, or 1 for a scalar
func (v Value) Len() int {
	if !v.tuple {
		return 1
	}

	return len(v.elems)
}

// At returns the i-th element; a scalar behaves like a 1-tuple
func (v Value) At(i int) Value {
	return v.asTuple()[i]
}

// Flatten returns every scalar in depth-first order
func (v Value) Flatten() []int {
	if !v.tuple {
		return []int{v.n}
	}

	out := make([]int, 0, len(v.elems))
	for _, e := range v.elems {
		out = append(out, e.Flatten()...)
	}

	return out
}

func (v Value) asTuple() []Value {
	if v.tuple {
		return v.elems
	}

	return []Value{v}
}

// String renders the value the way tuples are usually written, i.e., (9, (13, 7, 4))
func (v Value) String() string {
	if !v.tuple {
		return strconv.Itoa(v.n)
	}

	parts := make([]string, len(v.elems))
	for i, e := range v.elems {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON encodes a scalar as a number and a tuple as an array
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.tuple {
		return []byte(strconv.Itoa(v.n)), nil
	}

	return json.Marshal(v.elems)
}

// UnmarshalJSON decodes a number or a (nested) array
func (v *Value) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []Value
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return err
		}

		*v = Tuple(elems...)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*v = Int(n)
	return nil
}

// CompareValues compares two tie-break values
// Scalars are treated as 1-tuples. Elements are compared in order, recursing into nested tuples,
// and the first difference decides. If every element matches up to the shorter length, the values
// are equal. Returns 1 if a > b, -1 if a < b, and 0 if equal.
func CompareValues(a, b Value) int {
	as, bs := a.asTuple(), b.asTuple()

	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := as[i], bs[i]
		if x.tuple || y.tuple {
			if cmp := CompareValues(x, y); cmp != 0 {
				return cmp
			}

			continue
		}

		if x.n > y.n {
			return 1
		} else if x.n < y.n {
			return -1
		}
	}

	return 0
}
