package deeplink

import (
	"errors"
	"fmt"
	"slices"

	gotilsstrings "github.com/savsgio/gotils/strings"
)

// PartKind is the kind of a path part.
type PartKind uint8

const (
	PartAny PartKind = iota
	PartString
	PartDouble
	PartInt
	PartBool
	PartTerm
)

func (k PartKind) String() string {
	switch k {
	case PartAny:
		return "any"
	case PartString:
		return "string"
	case PartDouble:
		return "double"
	case PartInt:
		return "int"
	case PartBool:
		return "bool"
	case PartTerm:
		return "term"
	}

	return fmt.Sprintf("PartKind(%d)", uint8(k))
}

// PathPart matches exactly one path component.
type PathPart struct {
	Kind PartKind

	// Name is the key the extracted value is stored under. For PartTerm it
	// holds the literal the component must equal. Empty for PartAny.
	Name string
}

// QueryParameter is a named, typed, required or optional query string value.
type QueryParameter struct {
	name     string
	kind     Kind
	required bool
}

// Accessors of a query parameter.
func (p QueryParameter) Name() string   { return p.name }
func (p QueryParameter) Kind() Kind     { return p.kind }
func (p QueryParameter) Required() bool { return p.required }
func (p QueryParameter) IsArray() bool  { return p.kind.IsArray() }

func param[K Key](name K, kind Kind, required bool) QueryParameter {
	return QueryParameter{name: string(name), kind: kind, required: required}
}

// Scalar query parameters. Required ones fail the match when absent or
// unparsable; optional ones are left out of the values instead.
func RequiredInt[K Key](name K) QueryParameter    { return param(name, KindInt, true) }
func OptionalInt[K Key](name K) QueryParameter    { return param(name, KindInt, false) }
func RequiredBool[K Key](name K) QueryParameter   { return param(name, KindBool, true) }
func OptionalBool[K Key](name K) QueryParameter   { return param(name, KindBool, false) }
func RequiredDouble[K Key](name K) QueryParameter { return param(name, KindDouble, true) }
func OptionalDouble[K Key](name K) QueryParameter { return param(name, KindDouble, false) }
func RequiredString[K Key](name K) QueryParameter { return param(name, KindString, true) }
func OptionalString[K Key](name K) QueryParameter { return param(name, KindString, false) }

// Array query parameters collect every value of their key that parses. An
// array with no such value counts as absent.
func RequiredIntArray[K Key](name K) QueryParameter    { return param(name, KindIntArray, true) }
func OptionalIntArray[K Key](name K) QueryParameter    { return param(name, KindIntArray, false) }
func RequiredBoolArray[K Key](name K) QueryParameter   { return param(name, KindBoolArray, true) }
func OptionalBoolArray[K Key](name K) QueryParameter   { return param(name, KindBoolArray, false) }
func RequiredDoubleArray[K Key](name K) QueryParameter { return param(name, KindDoubleArray, true) }
func OptionalDoubleArray[K Key](name K) QueryParameter { return param(name, KindDoubleArray, false) }
func RequiredStringArray[K Key](name K) QueryParameter { return param(name, KindStringArray, true) }
func OptionalStringArray[K Key](name K) QueryParameter { return param(name, KindStringArray, false) }

// Template describes which path components and query parameters a URL must
// have to match, and under which names their values are extracted.
//
// A Template is immutable: every builder method returns a new Template.
type Template struct {
	parts  []PathPart
	params []QueryParameter
}

// NewTemplate returns a template matching the given path parts, in order.
func NewTemplate(parts ...PathPart) Template {
	return Template{parts: slices.Clone(parts)}
}

// Parts returns the path parts of t.
func (t Template) Parts() []PathPart {
	return slices.Clone(t.parts)
}

// Parameters returns the query parameters of t.
func (t Template) Parameters() []QueryParameter {
	return slices.Clone(t.params)
}

// Term appends a part matching exactly the given component.
func (t Template) Term(component string) Template {
	return t.appending(PathPart{Kind: PartTerm, Name: component})
}

// Str appends a part matching any component, stored as a string under name.
func (t Template) Str(name string) Template {
	return t.appending(PathPart{Kind: PartString, Name: name})
}

// Int appends a part matching an integer component, stored under name.
func (t Template) Int(name string) Template {
	return t.appending(PathPart{Kind: PartInt, Name: name})
}

// Double appends a part matching a floating point component, stored under name.
func (t Template) Double(name string) Template {
	return t.appending(PathPart{Kind: PartDouble, Name: name})
}

// Bool appends a part matching "true" or "false", stored under name.
func (t Template) Bool(name string) Template {
	return t.appending(PathPart{Kind: PartBool, Name: name})
}

// Any appends a part matching any component without storing it.
func (t Template) Any() Template {
	return t.appending(PathPart{Kind: PartAny})
}

// Query returns a template with the same path and the given query
// parameters, replacing any set before.
//
// Parameters form a set keyed by name only: when several share a name the
// first one is kept and the others are dropped, whatever their type. Use
// CheckParameters to find such collisions.
func (t Template) Query(params ...QueryParameter) Template {
	set := make([]QueryParameter, 0, len(params))
	names := make([]string, 0, len(params))

	for _, p := range params {
		if gotilsstrings.Include(names, p.name) {
			continue
		}

		names = append(names, p.name)
		set = append(set, p)
	}

	return Template{parts: t.parts, params: set}
}

func (t Template) appending(part PathPart) Template {
	parts := make([]PathPart, len(t.parts), len(t.parts)+1)
	copy(parts, t.parts)

	return Template{parts: append(parts, part), params: t.params}
}

// requiredCount returns the number of required query parameters.
func (t Template) requiredCount() int {
	n := 0
	for _, p := range t.params {
		if p.required {
			n++
		}
	}

	return n
}

// CheckParameters reports the parameters Template.Query would silently drop
// because an earlier parameter has the same name but a different type or
// requiredness. Exact duplicates are not reported.
func CheckParameters(params ...QueryParameter) error {
	var errs []error

	for i, p := range params {
		for _, prev := range params[:i] {
			if prev.name != p.name {
				continue
			}

			if prev != p {
				errs = append(errs, &ParameterConflictError{Kept: prev, Dropped: p})
			}

			break
		}
	}

	return errors.Join(errs...)
}

func (p QueryParameter) String() string {
	req := "required"
	if !p.required {
		req = "optional"
	}

	return fmt.Sprintf("%s %s %q", req, p.kind, p.name)
}
