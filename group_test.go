package deeplink

import (
	"reflect"
	"testing"
)

func TestGroup(t *testing.T) {
	r := New[testLink]()

	g1 := r.Group(Template{}.Term("shop"))
	g2 := g1.Group(Template{}.Term("category").Int("category_id"))
	g3 := g2.Group(Template{})

	if g3 != g2 {
		t.Errorf("an empty prefix must return the same group: %p != %p", g3, g2)
	}

	want := []PathPart{
		{Kind: PartTerm, Name: "shop"},
		{Kind: PartTerm, Name: "category"},
		{Kind: PartInt, Name: "category_id"},
	}
	if !reflect.DeepEqual(g2.Prefix(), want) {
		t.Errorf("Prefix() == %v, want %v", g2.Prefix(), want)
	}

	g1.Add("home", Template{}, record("home"))
	g2.Add("item", Template{}.Str("alias").Query(OptionalBool("is_new")), record("item"))
	g2.Add("listing", Template{}.Query(RequiredInt("page")).Query(RequiredInt("page"), OptionalInt("size")), record("listing"))

	entries := r.Entries()
	if got := names(entries); !reflect.DeepEqual(got, []string{"home", "item", "listing"}) {
		t.Fatalf("Entries() == %v", got)
	}

	if got := entries[1].Template.String(); got != "/shop/category/{category_id:int}/{alias}?{is_new:bool?}" {
		t.Errorf("item template == %q", got)
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"/shop", "home"},
		{"app://shop/category/12/shoes?is_new=true", "item"},
		{"/shop/category/12?page=1", "listing"},
		{"/shop/category/12", ""},
		{"/category/12/shoes", ""},
	}

	for _, test := range tests {
		got, ok := r.MatchString(test.raw)
		if ok != (test.want != "") || got.Name != test.want {
			t.Errorf("MatchString(%q) == %q, %v, want %q", test.raw, got.Name, ok, test.want)
		}
	}
}

func TestGroupInvalidInput(t *testing.T) {
	g := New[testLink]().Group(Template{}.Term("v1"))

	if err := catchPanic(func() { g.Add("", Template{}, record("")) }); err == nil {
		t.Error("a panic was expected with an empty name")
	}

	if err := catchPanic(func() { g.Add("nil", Template{}, nil) }); err == nil {
		t.Error("a panic was expected with a nil factory")
	}
}
