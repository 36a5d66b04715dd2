package deeplink

import (
	"net/url"
	"strings"

	"github.com/fasthttp/deeplink/literal"
)

// Parts is a URL broken down into what templates are matched against.
type Parts struct {
	// Components are the percent-decoded path components. For URLs with a
	// custom scheme the host comes first, so "app://product/42" yields
	// ["product", "42"] while "https://example.com/product/42" yields the same.
	Components []string

	// Query maps raw query keys to their raw values in order of appearance.
	// It is nil when the URL has no query string.
	Query map[string][]string

	// Fragment is the escaped fragment.
	Fragment string
}

// Decompose breaks u down into Parts.
//
// Components that are not valid percent-encoded UTF-8 are dropped.
func Decompose(u *url.URL) Parts {
	p := Parts{
		Fragment: u.EscapedFragment(),
	}

	if u.Scheme != "" && !isHTTP(u.Scheme) {
		if host := u.Hostname(); host != "" {
			p.Components = append(p.Components, host)
		}
	}

	path := u.EscapedPath()
	if u.Opaque != "" {
		path = u.Opaque
	}

	for _, seg := range strings.Split(path, "/") {
		if len(seg) == 0 {
			continue
		}

		if c, ok := literal.Unescape(seg); ok {
			p.Components = append(p.Components, c)
		}
	}

	if u.RawQuery != "" || u.ForceQuery {
		p.Query = parseQuery(u.RawQuery)
	}

	return p
}

// isHTTP reports whether scheme belongs to the web, whose hosts are not
// part of the deep link.
func isHTTP(scheme string) bool {
	return strings.Contains(scheme, "http")
}

// Extract matches t against p. It returns false when p does not fit t.
func Extract(t Template, p Parts) (Values, bool) {
	path, ok := extractPath(t.parts, p.Components)
	if !ok {
		return Values{}, false
	}

	query, ok := extractQuery(t.params, p.Query)
	if !ok {
		return Values{}, false
	}

	return Values{Path: path, Query: query, Fragment: p.Fragment}, true
}

func extractPath(parts []PathPart, components []string) (map[string]Value, bool) {
	if len(parts) != len(components) {
		return nil, false
	}

	values := make(map[string]Value, len(parts))

	for i, part := range parts {
		c := components[i]

		switch part.Kind {
		case PartTerm:
			if c != part.Name {
				return nil, false
			}

		case PartInt:
			v, ok := literal.Int(c)
			if !ok {
				return nil, false
			}
			values[part.Name] = IntValue(v)

		case PartBool:
			v, ok := literal.Bool(c)
			if !ok {
				return nil, false
			}
			values[part.Name] = BoolValue(v)

		case PartDouble:
			v, ok := literal.Double(c)
			if !ok {
				return nil, false
			}
			values[part.Name] = DoubleValue(v)

		case PartString:
			values[part.Name] = StringValue(c)

		case PartAny:
		}
	}

	return values, true
}
