package deeplink

// Group registers entries whose templates share a leading path.
type Group[T any] struct {
	recognizer *Recognizer[T]
	prefix     Template
}

// Group returns a nested group whose prefix is g's prefix followed by
// prefix's path parts.
func (g *Group[T]) Group(prefix Template) *Group[T] {
	if len(prefix.parts) == 0 {
		return g
	}

	return g.recognizer.Group(g.join(prefix))
}

// Add registers template under name, prefixed by the group's path parts.
// The template keeps its own query parameters.
func (g *Group[T]) Add(name string, template Template, factory Factory[T]) {
	g.recognizer.Add(name, g.join(template), factory)
}

// Prefix returns the path parts shared by the group's templates.
func (g *Group[T]) Prefix() []PathPart {
	return g.prefix.Parts()
}

func (g *Group[T]) join(t Template) Template {
	parts := make([]PathPart, 0, len(g.prefix.parts)+len(t.parts))
	parts = append(parts, g.prefix.parts...)
	parts = append(parts, t.parts...)

	return Template{parts: parts, params: t.params}
}
