package literal

import (
	"math"
	"testing"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOk bool
	}{
		{"plain", "plain", true},
		{"", "", true},
		{"Hello%20G%C3%BCnter", "Hello Günter", true},
		{"a+b", "a+b", true},
		{"%2F", "/", true},
		{"%2f", "/", true},
		{"100%", "", false},
		{"%4", "", false},
		{"%zz", "", false},
		{"%C3", "", false},
		{"%E2%82%AC", "€", true},
	}

	for _, test := range tests {
		got, ok := Unescape(test.in)
		if ok != test.wantOk {
			t.Errorf("Unescape(%q) ok == %v, want %v", test.in, ok, test.wantOk)
		}

		if got != test.want {
			t.Errorf("Unescape(%q) == %q, want %q", test.in, got, test.want)
		}
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		in     string
		want   bool
		wantOk bool
	}{
		{"true", true, true},
		{"false", false, true},
		{"TRUE", false, false},
		{"True", false, false},
		{"1", false, false},
		{"t", false, false},
		{"", false, false},
	}

	for _, test := range tests {
		got, ok := Bool(test.in)
		if got != test.want || ok != test.wantOk {
			t.Errorf("Bool(%q) == (%v, %v), want (%v, %v)", test.in, got, ok, test.want, test.wantOk)
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{"0", 0, true},
		{"123", 123, true},
		{"-42", -42, true},
		{"+7", 7, true},
		{"1.5", 0, false},
		{"0x10", 0, false},
		{"1_000", 0, false},
		{"99999999999999999999", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		got, ok := Int(test.in)
		if got != test.want || ok != test.wantOk {
			t.Errorf("Int(%q) == (%v, %v), want (%v, %v)", test.in, got, ok, test.want, test.wantOk)
		}
	}
}

func TestDouble(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOk bool
	}{
		{"3.14", 3.14, true},
		{"-2.1", -2.1, true},
		{"1", 1, true},
		{"1e3", 1000, true},
		{"trash", 0, false},
		{"nil", 0, false},
		{"", 0, false},
		{"1e400", math.Inf(1), true},
	}

	for _, test := range tests {
		got, ok := Double(test.in)
		if got != test.want || ok != test.wantOk {
			t.Errorf("Double(%q) == (%v, %v), want (%v, %v)", test.in, got, ok, test.want, test.wantOk)
		}
	}
}
