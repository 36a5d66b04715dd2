package deeplink

import (
	"errors"
	"reflect"
	"testing"
)

func TestTemplateBuildersDoNotMutate(t *testing.T) {
	base := Template{}.Term("category")
	withInt := base.Int("id")
	withAny := base.Any()

	if got := len(base.Parts()); got != 1 {
		t.Fatalf("base template has %d parts, want 1", got)
	}

	want := []PathPart{{Kind: PartTerm, Name: "category"}, {Kind: PartInt, Name: "id"}}
	if !reflect.DeepEqual(withInt.Parts(), want) {
		t.Errorf("Parts() == %v, want %v", withInt.Parts(), want)
	}

	want = []PathPart{{Kind: PartTerm, Name: "category"}, {Kind: PartAny}}
	if !reflect.DeepEqual(withAny.Parts(), want) {
		t.Errorf("Parts() == %v, want %v", withAny.Parts(), want)
	}

	parts := withInt.Parts()
	parts[0].Name = "changed"
	if withInt.Parts()[0].Name != "category" {
		t.Error("Parts() must return a copy")
	}
}

func TestTemplateBuilders(t *testing.T) {
	tpl := Template{}.Term("a").Str("s").Int("i").Double("d").Bool("b").Any()

	want := []PathPart{
		{Kind: PartTerm, Name: "a"},
		{Kind: PartString, Name: "s"},
		{Kind: PartInt, Name: "i"},
		{Kind: PartDouble, Name: "d"},
		{Kind: PartBool, Name: "b"},
		{Kind: PartAny},
	}

	if !reflect.DeepEqual(tpl.Parts(), want) {
		t.Errorf("Parts() == %v, want %v", tpl.Parts(), want)
	}

	if !reflect.DeepEqual(tpl.Parts(), NewTemplate(want...).Parts()) {
		t.Error("NewTemplate() and the builders must agree")
	}
}

func TestTemplateQueryKeepsPathAndReplacesParameters(t *testing.T) {
	tpl := Template{}.Term("search").Query(RequiredString("q"))
	replaced := tpl.Query(OptionalInt("page"))

	if got := replaced.Parameters(); len(got) != 1 || got[0].Name() != "page" {
		t.Errorf("Parameters() == %v, want only page", got)
	}

	if got := tpl.Parameters(); len(got) != 1 || got[0].Name() != "q" {
		t.Errorf("original Parameters() == %v, want only q", got)
	}

	if !reflect.DeepEqual(replaced.Parts(), tpl.Parts()) {
		t.Errorf("Parts() == %v, want %v", replaced.Parts(), tpl.Parts())
	}

	extended := replaced.Int("page_size")
	if got := extended.Parameters(); len(got) != 1 || got[0].Name() != "page" {
		t.Errorf("path builders must keep parameters, got %v", got)
	}
}

func TestTemplateQueryIsKeyedByName(t *testing.T) {
	tpl := Template{}.Query(RequiredInt("id"), OptionalString("id"), OptionalBool("flag"))

	got := tpl.Parameters()
	want := []QueryParameter{RequiredInt("id"), OptionalBool("flag")}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parameters() == %v, want %v", got, want)
	}
}

func TestQueryParameterConstructors(t *testing.T) {
	type key string

	tests := []struct {
		param    QueryParameter
		kind     Kind
		required bool
	}{
		{RequiredInt(key("k")), KindInt, true},
		{OptionalInt("k"), KindInt, false},
		{RequiredBool("k"), KindBool, true},
		{OptionalBool("k"), KindBool, false},
		{RequiredDouble("k"), KindDouble, true},
		{OptionalDouble("k"), KindDouble, false},
		{RequiredString("k"), KindString, true},
		{OptionalString("k"), KindString, false},
		{RequiredIntArray("k"), KindIntArray, true},
		{OptionalIntArray("k"), KindIntArray, false},
		{RequiredBoolArray("k"), KindBoolArray, true},
		{OptionalBoolArray("k"), KindBoolArray, false},
		{RequiredDoubleArray("k"), KindDoubleArray, true},
		{OptionalDoubleArray("k"), KindDoubleArray, false},
		{RequiredStringArray("k"), KindStringArray, true},
		{OptionalStringArray(key("k")), KindStringArray, false},
	}

	for _, test := range tests {
		p := test.param
		if p.Name() != "k" || p.Kind() != test.kind || p.Required() != test.required {
			t.Errorf("parameter %v: want kind %s required %v", p, test.kind, test.required)
		}

		if p.IsArray() != test.kind.IsArray() {
			t.Errorf("parameter %v: IsArray() == %v", p, p.IsArray())
		}
	}
}

func TestCheckParameters(t *testing.T) {
	if err := CheckParameters(RequiredInt("a"), OptionalInt("b"), RequiredInt("a")); err != nil {
		t.Errorf("unexpected error for exact duplicates: %v", err)
	}

	err := CheckParameters(RequiredInt("a"), OptionalInt("a"), RequiredString("a"), RequiredBool("b"))
	if !errors.Is(err, ErrParameterConflict) {
		t.Fatalf("CheckParameters() error == %v, want %v", err, ErrParameterConflict)
	}

	var conflict *ParameterConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CheckParameters() error == %T, want *ParameterConflictError", err)
	}

	if conflict.Kept != RequiredInt("a") || conflict.Dropped != OptionalInt("a") {
		t.Errorf("conflict == %+v", conflict)
	}

	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 2 {
		t.Errorf("got %d conflicts, want 2", n)
	}
}
