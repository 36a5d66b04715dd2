package deeplink

// rank returns how specific a path part is. Higher ranks win collisions.
func (k PartKind) rank() int {
	switch k {
	case PartAny:
		return 0
	case PartString:
		return 1
	case PartDouble:
		return 2
	case PartInt, PartBool:
		return 3
	case PartTerm:
		return 4
	}

	return 0
}

// Compare orders templates by priority. It returns +1 if a outranks b, -1 if
// b outranks a and 0 if neither does.
//
// A template with more path parts always outranks one with fewer. Between
// templates of equal length the first position holding parts of different
// rank decides, with term > int = bool > double > string > any. When all
// positions tie, the template requiring more query parameters wins.
func Compare(a, b Template) int {
	if len(a.parts) != len(b.parts) {
		return sign(len(a.parts) - len(b.parts))
	}

	for i := range a.parts {
		if d := a.parts[i].Kind.rank() - b.parts[i].Kind.rank(); d != 0 {
			return sign(d)
		}
	}

	return sign(a.requiredCount() - b.requiredCount())
}

// Outranks reports whether t has strictly higher priority than other.
func (t Template) Outranks(other Template) bool {
	return Compare(t, other) > 0
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}
