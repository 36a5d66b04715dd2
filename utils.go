package deeplink

import "strings"

const reservedNameChars = "{}:/?&[]*"

// validName reports whether name can be written in template notation.
func validName(name string) bool {
	return len(name) > 0 && !strings.ContainsAny(name, reservedNameChars)
}
