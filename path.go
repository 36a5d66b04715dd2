package deeplink

import (
	"fmt"
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/fasthttp/deeplink/literal"
)

// ParseTemplate parses the text form of a template:
//
//	/category/{id:int}/{alias}/*?{query}&{is_new:bool?}&{ids:[]int}
//
// Path segments are '/'-separated. '*' matches any component, {name} or
// {name:string} a string, {name:int}, {name:bool} and {name:double} typed
// components. Any other segment is a literal term and may be percent-encoded.
//
// Query parameters follow '?' and are '&'-separated, each written
// {name[:type][?]}. Types are string (the default), int, bool, double, or
// one of them prefixed with [] for arrays. A trailing '?' makes the
// parameter optional.
func ParseTemplate(s string) (Template, error) {
	path, query, hasQuery := strings.Cut(s, "?")

	var parts []PathPart

	for _, seg := range strings.Split(path, "/") {
		if len(seg) == 0 {
			continue
		}

		part, err := parsePathPart(seg, s)
		if err != nil {
			return Template{}, errtrace.Wrap(err)
		}

		parts = append(parts, part)
	}

	t := NewTemplate(parts...)
	if !hasQuery {
		return t, nil
	}

	var params []QueryParameter
	names := make(map[string]struct{})

	for _, spec := range strings.Split(query, "&") {
		if len(spec) == 0 {
			continue
		}

		p, err := parseQueryParameter(spec, s)
		if err != nil {
			return Template{}, errtrace.Wrap(err)
		}

		if _, dup := names[p.name]; dup {
			return Template{}, errtrace.Wrap(invalidTemplate(s, "duplicated query parameter %q", p.name))
		}

		names[p.name] = struct{}{}
		params = append(params, p)
	}

	return t.Query(params...), nil
}

// MustParseTemplate is like ParseTemplate but panics on error.
func MustParseTemplate(s string) Template {
	t, err := ParseTemplate(s)
	if err != nil {
		panic(err)
	}

	return t
}

func parsePathPart(seg, full string) (PathPart, error) {
	if seg == "*" {
		return PathPart{Kind: PartAny}, nil
	}

	inner, braced := unbrace(seg)
	if !braced {
		if strings.ContainsAny(seg, "{}") {
			return PathPart{}, invalidTemplate(full, "unbalanced braces in segment %q", seg)
		}

		term, ok := literal.Unescape(seg)
		if !ok {
			return PathPart{}, invalidTemplate(full, "malformed escape in segment %q", seg)
		}

		return PathPart{Kind: PartTerm, Name: term}, nil
	}

	name, typ, _ := strings.Cut(inner, ":")
	if !validName(name) {
		return PathPart{}, invalidTemplate(full, "invalid name %q", name)
	}

	kind, ok := pathPartKinds[typ]
	if !ok {
		return PathPart{}, invalidTemplate(full, "unknown path type %q", typ)
	}

	return PathPart{Kind: kind, Name: name}, nil
}

func parseQueryParameter(spec, full string) (QueryParameter, error) {
	inner, braced := unbrace(spec)
	if !braced {
		return QueryParameter{}, invalidTemplate(full, "query parameter %q must be written {name[:type][?]}", spec)
	}

	required := true
	if strings.HasSuffix(inner, "?") {
		required = false
		inner = inner[:len(inner)-1]
	}

	name, typ, _ := strings.Cut(inner, ":")
	if !validName(name) {
		return QueryParameter{}, invalidTemplate(full, "invalid name %q", name)
	}

	kind, ok := queryKinds[typ]
	if !ok {
		return QueryParameter{}, invalidTemplate(full, "unknown query type %q", typ)
	}

	return QueryParameter{name: name, kind: kind, required: required}, nil
}

// unbrace returns s without its surrounding braces.
func unbrace(s string) (string, bool) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s, false
	}

	inner := s[1 : len(s)-1]
	if strings.ContainsAny(inner, "{}") {
		return s, false
	}

	return inner, true
}

func invalidTemplate(s, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidTemplate, s, fmt.Sprintf(format, args...))
}

var pathPartKinds = map[string]PartKind{
	"":       PartString,
	"string": PartString,
	"int":    PartInt,
	"bool":   PartBool,
	"double": PartDouble,
}

var queryKinds = map[string]Kind{
	"":         KindString,
	"string":   KindString,
	"int":      KindInt,
	"bool":     KindBool,
	"double":   KindDouble,
	"[]string": KindStringArray,
	"[]int":    KindIntArray,
	"[]bool":   KindBoolArray,
	"[]double": KindDoubleArray,
}

var kindTypeNames = map[Kind]string{
	KindString:      "string",
	KindInt:         "int",
	KindBool:        "bool",
	KindDouble:      "double",
	KindStringArray: "[]string",
	KindIntArray:    "[]int",
	KindBoolArray:   "[]bool",
	KindDoubleArray: "[]double",
}

// String returns t in the notation read by ParseTemplate.
func (t Template) String() string {
	var sb strings.Builder

	if len(t.parts) == 0 {
		sb.WriteByte('/')
	}

	for _, part := range t.parts {
		sb.WriteByte('/')

		switch part.Kind {
		case PartAny:
			sb.WriteByte('*')
		case PartTerm:
			sb.WriteString(url.PathEscape(part.Name))
		case PartString:
			sb.WriteString("{" + part.Name + "}")
		default:
			sb.WriteString("{" + part.Name + ":" + part.Kind.String() + "}")
		}
	}

	for i, p := range t.params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}

		sb.WriteString("{" + p.name)
		if p.kind != KindString {
			sb.WriteString(":" + kindTypeNames[p.kind])
		}
		if !p.required {
			sb.WriteByte('?')
		}
		sb.WriteByte('}')
	}

	return sb.String()
}
