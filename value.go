package deeplink

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindBoolArray
	KindIntArray
	KindDoubleArray
	KindStringArray
)

var kindNames = [...]string{
	KindInvalid:     "Invalid",
	KindBool:        "Bool",
	KindInt:         "Int",
	KindDouble:      "Double",
	KindString:      "String",
	KindBoolArray:   "[Bool]",
	KindIntArray:    "[Int]",
	KindDoubleArray: "[Double]",
	KindStringArray: "[String]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsArray reports whether k is one of the array kinds.
func (k Kind) IsArray() bool {
	return k >= KindBoolArray && k <= KindStringArray
}

// Elem returns the element kind of an array kind, or k itself.
func (k Kind) Elem() Kind {
	if k.IsArray() {
		return k - KindBoolArray + KindBool
	}

	return k
}

// Array returns the array kind whose elements are of kind k.
func (k Kind) Array() Kind {
	if k >= KindBool && k <= KindString {
		return k - KindBool + KindBoolArray
	}

	return k
}

// Value is a single extracted path or query value: a bool, int, float64 or
// string, or a homogeneous slice of one of them.
//
// The zero Value is invalid. Values are immutable, slices are copied on the
// way in and on the way out.
type Value struct {
	kind Kind
	v    any
}

// BoolValue, IntValue, DoubleValue and StringValue return scalar values.
func BoolValue(b bool) Value      { return Value{kind: KindBool, v: b} }
func IntValue(i int) Value        { return Value{kind: KindInt, v: i} }
func DoubleValue(f float64) Value { return Value{kind: KindDouble, v: f} }
func StringValue(s string) Value  { return Value{kind: KindString, v: s} }

// BoolArray, IntArray, DoubleArray and StringArray return array values
// holding a copy of their arguments.
func BoolArray(b ...bool) Value      { return Value{kind: KindBoolArray, v: slices.Clone(b)} }
func IntArray(i ...int) Value        { return Value{kind: KindIntArray, v: slices.Clone(i)} }
func DoubleArray(f ...float64) Value { return Value{kind: KindDoubleArray, v: slices.Clone(f)} }
func StringArray(s ...string) Value  { return Value{kind: KindStringArray, v: slices.Clone(s)} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// The As methods return the content of v and true when v holds that type.
// Slices are copies.
func (v Value) AsBool() (bool, bool)         { return as[bool](v) }
func (v Value) AsInt() (int, bool)           { return as[int](v) }
func (v Value) AsDouble() (float64, bool)    { return as[float64](v) }
func (v Value) AsString() (string, bool)     { return as[string](v) }
func (v Value) AsBools() ([]bool, bool)      { return as[[]bool](v) }
func (v Value) AsInts() ([]int, bool)        { return as[[]int](v) }
func (v Value) AsDoubles() ([]float64, bool) { return as[[]float64](v) }
func (v Value) AsStrings() ([]string, bool)  { return as[[]string](v) }

// Interface returns the Go value held by v, nil for the zero Value.
func (v Value) Interface() any {
	x, _ := as[any](v)
	return x
}

// Equal reports whether v and other hold the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch a := v.v.(type) {
	case []bool:
		return slices.Equal(a, other.v.([]bool))
	case []int:
		return slices.Equal(a, other.v.([]int))
	case []float64:
		return slices.Equal(a, other.v.([]float64))
	case []string:
		return slices.Equal(a, other.v.([]string))
	}

	return v.v == other.v
}

func (v Value) String() string {
	if !v.IsValid() {
		return "<invalid>"
	}

	return fmt.Sprint(v.v)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v)
}

// Primitive lists the Go types a Value can be decoded into.
type Primitive interface {
	bool | int | float64 | string | []bool | []int | []float64 | []string
}

// kindOf returns the Kind that stores T.
func kindOf[T Primitive]() Kind {
	var zero T

	switch any(zero).(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case float64:
		return KindDouble
	case string:
		return KindString
	case []bool:
		return KindBoolArray
	case []int:
		return KindIntArray
	case []float64:
		return KindDoubleArray
	case []string:
		return KindStringArray
	}

	return KindInvalid
}

func as[T any](v Value) (T, bool) {
	x := v.v

	switch s := x.(type) {
	case []bool:
		x = slices.Clone(s)
	case []int:
		x = slices.Clone(s)
	case []float64:
		x = slices.Clone(s)
	case []string:
		x = slices.Clone(s)
	}

	t, ok := x.(T)
	return t, ok
}
