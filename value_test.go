package deeplink

import (
	"encoding/json"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		array bool
		elem  Kind
	}{
		{KindBool, "Bool", false, KindBool},
		{KindInt, "Int", false, KindInt},
		{KindDouble, "Double", false, KindDouble},
		{KindString, "String", false, KindString},
		{KindBoolArray, "[Bool]", true, KindBool},
		{KindIntArray, "[Int]", true, KindInt},
		{KindDoubleArray, "[Double]", true, KindDouble},
		{KindStringArray, "[String]", true, KindString},
	}

	for _, test := range tests {
		if got := test.kind.String(); got != test.name {
			t.Errorf("String() == %q, want %q", got, test.name)
		}

		if got := test.kind.IsArray(); got != test.array {
			t.Errorf("%s: IsArray() == %v, want %v", test.name, got, test.array)
		}

		if got := test.kind.Elem(); got != test.elem {
			t.Errorf("%s: Elem() == %s, want %s", test.name, got, test.elem)
		}

		if got := test.elem.Array(); !got.IsArray() || got.Elem() != test.elem {
			t.Errorf("%s: Array() == %s", test.name, got)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if v, ok := IntValue(42).AsInt(); !ok || v != 42 {
		t.Errorf("AsInt() == %d, %v", v, ok)
	}

	if _, ok := IntValue(42).AsDouble(); ok {
		t.Error("an Int value must not be read as a Double")
	}

	if v, ok := StringValue("x").AsString(); !ok || v != "x" {
		t.Errorf("AsString() == %q, %v", v, ok)
	}

	if v, ok := BoolValue(true).AsBool(); !ok || !v {
		t.Errorf("AsBool() == %v, %v", v, ok)
	}

	if v, ok := DoubleValue(0.5).AsDouble(); !ok || v != 0.5 {
		t.Errorf("AsDouble() == %v, %v", v, ok)
	}

	if _, ok := StringArray("a").AsString(); ok {
		t.Error("an array must not be read as a scalar")
	}

	var zero Value
	if zero.IsValid() || zero.Kind() != KindInvalid || zero.Interface() != nil {
		t.Error("the zero Value must be invalid")
	}
}

func TestValueArraysAreCopied(t *testing.T) {
	in := []int{1, 2}
	v := IntArray(in...)
	in[0] = 100

	out, ok := v.AsInts()
	if !ok || out[0] != 1 {
		t.Fatalf("AsInts() == %v, %v", out, ok)
	}

	out[1] = 200

	if again, _ := v.AsInts(); again[1] != 2 {
		t.Error("AsInts() must return a copy")
	}

	if bs, ok := BoolArray(true).AsBools(); !ok || len(bs) != 1 {
		t.Errorf("AsBools() == %v, %v", bs, ok)
	}

	if ds, ok := DoubleArray(1.5).AsDoubles(); !ok || ds[0] != 1.5 {
		t.Errorf("AsDoubles() == %v, %v", ds, ok)
	}

	if ss, ok := StringArray("a", "b").AsStrings(); !ok || len(ss) != 2 {
		t.Errorf("AsStrings() == %v, %v", ss, ok)
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{IntValue(1), IntValue(1), true},
		{IntValue(1), IntValue(2), false},
		{IntValue(1), DoubleValue(1), false},
		{StringValue(""), StringValue(""), true},
		{IntArray(1, 2), IntArray(1, 2), true},
		{IntArray(1, 2), IntArray(2, 1), false},
		{StringArray("a"), StringArray("a"), true},
		{DoubleArray(), DoubleArray(), true},
		{BoolArray(true), BoolArray(false), false},
		{Value{}, Value{}, true},
		{Value{}, StringValue(""), false},
	}

	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("%v.Equal(%v) == %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	values := Values{
		Path:  map[string]Value{"id": IntValue(7)},
		Query: map[string]Value{"tags": StringArray("a", "b"), "ok": BoolValue(true)},
	}

	b, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"path":{"id":7},"query":{"ok":true,"tags":["a","b"]}}`
	if string(b) != want {
		t.Errorf("json.Marshal() == %s, want %s", b, want)
	}
}
