package deeplink

//go:generate go tool errtrace -w .

import "braces.dev/errtrace"

// Container reads typed values out of Values by key, reporting missing keys
// and kind mismatches as errors instead of leaving callers to assert types.
type Container[K Key] struct {
	values Values
}

// NewContainer returns a container over v whose keys are of type K.
func NewContainer[K Key](v Values) *Container[K] {
	return &Container[K]{values: v}
}

// Values returns the values the container reads from.
func (c *Container[K]) Values() Values {
	return c.values
}

// DecodePath returns the path value stored under key.
func DecodePath[T Primitive, K Key](c *Container[K], key K) (T, error) {
	return errtrace.Wrap2(decodeRequired[T](c.values.Path, string(key)))
}

// DecodeQuery returns the query value stored under key.
func DecodeQuery[T Primitive, K Key](c *Container[K], key K) (T, error) {
	return errtrace.Wrap2(decodeRequired[T](c.values.Query, string(key)))
}

// DecodeOptionalQuery returns the query value stored under key, or nil if
// there is none. A value of another kind is still an error.
func DecodeOptionalQuery[T Primitive, K Key](c *Container[K], key K) (*T, error) {
	v, ok := c.values.Query[string(key)]
	if !ok {
		return nil, nil
	}

	t, err := decodeValue[T](v, string(key))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &t, nil
}

func decodeRequired[T Primitive](source map[string]Value, key string) (T, error) {
	v, ok := source[key]
	if !ok {
		var zero T
		return zero, errtrace.Wrap(&KeyNotFoundError{Key: key})
	}

	return errtrace.Wrap2(decodeValue[T](v, key))
}

func decodeValue[T Primitive](v Value, key string) (T, error) {
	t, ok := as[T](v)
	if !ok {
		return t, errtrace.Wrap(&TypeMismatchError{Key: key, Actual: v.Kind(), Expected: kindOf[T]()})
	}

	return t, nil
}
