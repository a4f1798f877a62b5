// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cell

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	"pgregory.net/rapid"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestOf(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	tests := []struct {
		note string
		in   any
		kind Kind
		str  string
	}{
		{note: "nil", in: nil, kind: Null, str: ""},
		{note: "true", in: true, kind: Bool, str: "✓"},
		{note: "false", in: false, kind: Bool, str: "✗"},
		{note: "string", in: "abc", kind: String, str: "abc"},
		{note: "int", in: 42, kind: Number, str: "42"},
		{note: "negative int", in: int64(-7), kind: Number, str: "-7"},
		{note: "large int", in: int64(1) << 60, kind: BigInt, str: "1152921504606846976"},
		{note: "large uint", in: uint64(math.MaxUint64), kind: BigInt, str: "18446744073709551615"},
		{note: "float", in: 1.5, kind: Number, str: "1.5"},
		{note: "float32", in: float32(0.5), kind: Number, str: "0.5"},
		{note: "big int", in: huge, kind: BigInt, str: "123456789012345678901234567890"},
		{note: "json number int", in: json.Number("12"), kind: Number, str: "12"},
		{note: "json number float", in: json.Number("1.25"), kind: Number, str: "1.25"},
		{note: "json number huge", in: json.Number("123456789012345678901234567890"), kind: BigInt, str: "123456789012345678901234567890"},
		{note: "stringer", in: stringer{}, kind: String, str: "stringer"},
		{note: "error", in: errors.New("boom"), kind: String, str: "boom"},
		{note: "slice", in: []int{1, 2}, kind: String, str: "[1 2]"},
		{note: "value", in: StringValue("x"), kind: String, str: "x"},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			v := Of(tc.in)
			if v.Kind() != tc.kind {
				t.Fatalf("Expected kind %v but got %v", tc.kind, v.Kind())
			}
			if v.String() != tc.str {
				t.Fatalf("Expected %q but got %q", tc.str, v.String())
			}
		})
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var v Value
	if !v.IsAbsent() || !v.IsEmpty() || v.String() != "" {
		t.Fatalf("Expected zero value to be absent and empty")
	}
	if !NullValue().IsEmpty() || NullValue().IsAbsent() {
		t.Fatalf("Expected null to be empty but not absent")
	}
	if StringValue("").IsEmpty() {
		t.Fatalf("Expected empty string not to be an empty value")
	}
}

func TestFormatNumber(t *testing.T) {
	tenth, fifth := 0.1, 0.2
	tests := []struct {
		in  float64
		exp string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{tenth + fifth, "0.30000000000000004"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.exp {
			t.Errorf("FormatNumber(%v): expected %q but got %q", tc.in, tc.exp, got)
		}
	}
}

func TestValueJSON(t *testing.T) {
	values := []Value{{}, NullValue(), BoolValue(true), StringValue("a\"b"), NumberValue(2.5), Of(int64(1) << 60), NumberValue(math.NaN())}

	bs, err := json.Marshal(values)
	if err != nil {
		t.Fatal(err)
	}

	exp := `[null,null,true,"a\"b",2.5,1152921504606846976,"NaN"]`
	if string(bs) != exp {
		t.Fatalf("Expected %v but got %v", exp, string(bs))
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var decoded []Value
	if err := json.Unmarshal([]byte(`[null,true,"x",1.5,1152921504606846976]`), &decoded); err != nil {
		t.Fatal(err)
	}
	exp := []Value{NullValue(), BoolValue(true), StringValue("x"), NumberValue(1.5), Of(int64(1) << 60)}
	for i := range exp {
		if !exp[i].Equal(decoded[i]) {
			t.Fatalf("Expected %v at %d but got %v", exp[i], i, decoded[i])
		}
	}

	var v Value
	if err := json.Unmarshal([]byte(`{"a": 1}`), &v); err == nil {
		t.Fatalf("Expected error for non-scalar value")
	}
}

func TestValueEqual(t *testing.T) {
	if NumberValue(1).Equal(StringValue("1")) {
		t.Fatalf("Expected values of different kinds to differ")
	}
	if !NumberValue(math.NaN()).Equal(NumberValue(math.NaN())) {
		t.Fatalf("Expected NaN to equal NaN")
	}
	if !(Value{}).Equal(Value{}) || (Value{}).Equal(NullValue()) {
		t.Fatalf("Expected absent to only equal absent")
	}
}

func TestOfRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.OneOf(
			rapid.Just[any](nil),
			rapid.Map(rapid.Bool(), func(b bool) any { return b }),
			rapid.Map(rapid.String(), func(s string) any { return s }),
			rapid.Map(rapid.Float64(), func(f float64) any { return f }),
			rapid.Map(rapid.IntRange(-maxSafeInteger, maxSafeInteger), func(i int) any { return float64(i) }),
		).Draw(t, "in")

		got := Of(in).Interface()
		if f, ok := in.(float64); ok && math.IsNaN(f) {
			if g, ok := got.(float64); !ok || !math.IsNaN(g) {
				t.Fatalf("Expected NaN but got %v", got)
			}
			return
		}
		if got != in {
			t.Fatalf("Expected %v but got %v", in, got)
		}
	})
}
