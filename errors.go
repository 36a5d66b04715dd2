package deeplink

import "fmt"

// Error is a constant error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrKeyNotFound is matched by every *KeyNotFoundError.
	ErrKeyNotFound Error = "key not found"

	// ErrTypeMismatch is matched by every *TypeMismatchError.
	ErrTypeMismatch Error = "type mismatch"

	// ErrRejected is returned by a Factory to decline values that matched
	// its template structurally. The recognizer treats it as a quiet miss.
	ErrRejected Error = "deep link rejected"

	// ErrInvalidTemplate is matched by template notation parse errors.
	ErrInvalidTemplate Error = "invalid template"

	// ErrParameterConflict is matched by every *ParameterConflictError.
	ErrParameterConflict Error = "query parameter conflict"
)

// KeyNotFoundError is returned when a required key is absent.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// TypeMismatchError is returned when a key holds a value of another kind
// than the one asked for.
type TypeMismatchError struct {
	Key      string
	Actual   Kind
	Expected Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s for key %q: expected %s, actual %s", ErrTypeMismatch, e.Key, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// ParameterConflictError describes a query parameter dropped from a set
// because an earlier one has the same name.
type ParameterConflictError struct {
	Kept    QueryParameter
	Dropped QueryParameter
}

func (e *ParameterConflictError) Error() string {
	return fmt.Sprintf("%s: %s shadows %s", ErrParameterConflict, e.Kept, e.Dropped)
}

func (e *ParameterConflictError) Is(target error) bool { return target == ErrParameterConflict }
