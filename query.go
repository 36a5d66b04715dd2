package deeplink

import (
	"strings"

	"github.com/fasthttp/deeplink/literal"
)

// parseQuery splits a raw query string into a multi-valued map. Pairs without
// exactly one '=' are dropped. Keys and values are kept raw.
func parseQuery(query string) map[string][]string {
	m := make(map[string][]string)

	for _, pair := range strings.Split(query, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.IndexByte(value, '=') >= 0 {
			continue
		}

		m[key] = append(m[key], value)
	}

	return m
}

// extractQuery resolves params against query.
//
// An empty parameter set matches any query. A missing query matches only
// when no parameter is required. Required parameters that are absent or do
// not coerce fail the match; optional ones are left out.
func extractQuery(params []QueryParameter, query map[string][]string) (map[string]Value, bool) {
	values := make(map[string]Value)

	if len(params) == 0 {
		return values, true
	}

	if query == nil {
		for _, p := range params {
			if p.required {
				return nil, false
			}
		}

		return values, true
	}

	for _, p := range params {
		v, ok := coerce(p.kind, query[p.name])
		if !ok {
			if p.required {
				return nil, false
			}

			continue
		}

		values[p.name] = v
	}

	return values, true
}

// coerce converts the raw values of one query key into a Value of the given
// kind. Scalars use the first raw value; arrays keep every raw value that
// parses and are absent when none does.
func coerce(kind Kind, raw []string) (Value, bool) {
	if len(raw) == 0 {
		return Value{}, false
	}

	switch kind {
	case KindInt:
		v, ok := literal.Int(raw[0])
		return IntValue(v), ok

	case KindBool:
		v, ok := literal.Bool(raw[0])
		return BoolValue(v), ok

	case KindDouble:
		v, ok := literal.Double(raw[0])
		return DoubleValue(v), ok

	case KindString:
		v, _ := literal.Unescape(raw[0])
		return StringValue(v), true

	case KindIntArray:
		vs := collect(raw, literal.Int)
		return IntArray(vs...), len(vs) > 0

	case KindBoolArray:
		vs := collect(raw, literal.Bool)
		return BoolArray(vs...), len(vs) > 0

	case KindDoubleArray:
		vs := collect(raw, literal.Double)
		return DoubleArray(vs...), len(vs) > 0

	case KindStringArray:
		vs := collect(raw, literal.Unescape)
		return StringArray(vs...), len(vs) > 0
	}

	return Value{}, false
}

func collect[T any](raw []string, parse func(string) (T, bool)) []T {
	vs := make([]T, 0, len(raw))

	for _, s := range raw {
		if v, ok := parse(s); ok {
			vs = append(vs, v)
		}
	}

	return vs
}
