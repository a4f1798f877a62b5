// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cell defines the values a table cell can hold.
package cell

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the type of a Value.
type Kind int

const (
	// Absent is the kind of the zero Value: nothing was written.
	Absent Kind = iota
	// Null is an explicit empty value.
	Null
	// Bool is a boolean value.
	Bool
	// String is a string value.
	String
	// Number is a floating point number.
	Number
	// BigInt is an integer that does not fit into a float64 mantissa.
	BigInt
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case String:
		return "string"
	case Number:
		return "number"
	case BigInt:
		return "bigint"
	}
	return "unknown"
}

// Glyphs used to render boolean values.
const (
	TrueGlyph  = "✓"
	FalseGlyph = "✗"
)

const maxSafeInteger = 1<<53 - 1

// Value is an immutable cell value. The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
	i    *big.Int
}

// NullValue returns the null Value.
func NullValue() Value {
	return Value{kind: Null}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: Bool, b: b}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

// NumberValue returns a number Value.
func NumberValue(f float64) Value {
	return Value{kind: Number, n: f}
}

// BigIntValue returns an integer Value. The argument is copied.
func BigIntValue(i *big.Int) Value {
	return Value{kind: BigInt, i: new(big.Int).Set(i)}
}

// Of converts a Go value into a Value. Numbers and booleans keep their type,
// nil becomes null and everything else is coerced to its string form.
func Of(v any) Value {
	switch v := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return v
	case bool:
		return BoolValue(v)
	case string:
		return StringValue(v)
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(float64(v))
	case int:
		return intValue(int64(v))
	case int8:
		return intValue(int64(v))
	case int16:
		return intValue(int64(v))
	case int32:
		return intValue(int64(v))
	case int64:
		return intValue(v)
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return uintValue(uint64(v))
	case uint16:
		return uintValue(uint64(v))
	case uint32:
		return uintValue(uint64(v))
	case uint64:
		return uintValue(v)
	case *big.Int:
		if v == nil {
			return NullValue()
		}
		return BigIntValue(v)
	case json.Number:
		if i, ok := new(big.Int).SetString(string(v), 10); ok {
			if i.IsInt64() {
				return intValue(i.Int64())
			}
			return Value{kind: BigInt, i: i}
		}
		if f, err := v.Float64(); err == nil {
			return NumberValue(f)
		}
		return StringValue(string(v))
	case fmt.Stringer:
		return StringValue(v.String())
	case error:
		return StringValue(v.Error())
	}
	return StringValue(fmt.Sprint(v))
}

func intValue(i int64) Value {
	if i > maxSafeInteger || i < -maxSafeInteger {
		return Value{kind: BigInt, i: big.NewInt(i)}
	}
	return NumberValue(float64(i))
}

func uintValue(u uint64) Value {
	if u > maxSafeInteger {
		return Value{kind: BigInt, i: new(big.Int).SetUint64(u)}
	}
	return NumberValue(float64(u))
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent returns true if nothing was written.
func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

// IsEmpty returns true if v is absent or null. Empty values do not extend
// the bounds of a table.
func (v Value) IsEmpty() bool {
	return v.kind == Absent || v.kind == Null
}

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == Bool
}

// Str returns the string held by v.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == String
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	return v.n, v.kind == Number
}

// Int returns a copy of the integer held by v.
func (v Value) Int() (*big.Int, bool) {
	if v.kind != BigInt {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// Interface returns v as a plain Go value: nil, bool, string, float64 or
// *big.Int.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case String:
		return v.s
	case Number:
		return v.n
	case BigInt:
		return new(big.Int).Set(v.i)
	}
	return nil
}

// String returns the default rendering of v. Absent and null values render
// as the empty string and booleans as check or cross glyphs.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		if v.b {
			return TrueGlyph
		}
		return FalseGlyph
	case String:
		return v.s
	case Number:
		return FormatNumber(v.n)
	case BigInt:
		return v.i.String()
	}
	return ""
}

// Equal returns true if v and other have the same kind and value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Bool:
		return v.b == other.b
	case String:
		return v.s == other.s
	case Number:
		return v.n == other.n || (math.IsNaN(v.n) && math.IsNaN(other.n))
	case BigInt:
		return v.i.Cmp(other.i) == 0
	}
	return true
}

// MarshalJSON encodes v as a JSON scalar. Absent values encode as null and
// non-finite numbers as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Bool:
		return json.Marshal(v.b)
	case String:
		return json.Marshal(v.s)
	case Number:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return json.Marshal(FormatNumber(v.n))
		}
		return []byte(FormatNumber(v.n)), nil
	case BigInt:
		return []byte(v.i.String()), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes a JSON scalar into v. Numbers that are integers
// beyond the float64 mantissa become BigInt values.
func (v *Value) UnmarshalJSON(bs []byte) error {
	var x any
	dec := json.NewDecoder(strings.NewReader(string(bs)))
	dec.UseNumber()
	if err := dec.Decode(&x); err != nil {
		return err
	}
	switch x.(type) {
	case map[string]any, []any:
		return fmt.Errorf("cell value must be a scalar, got %s", bs)
	}
	*v = Of(x)
	return nil
}

// FormatNumber renders f the way numbers are conventionally printed in
// tables: the shortest decimal representation, switching to exponent form
// for very small and very large magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + exp
}
