package enumeration

import "errors"

// Errors returned by member construction and set operations. Wrapped
// forms add the offending key and the set name; check with errors.Is.
var (
	// ErrInvalidValue is returned when a member value is negative.
	ErrInvalidValue = errors.New("enumeration: value must be non-negative")

	// ErrInvalidName is returned when a member name is empty or whitespace-only.
	ErrInvalidName = errors.New("enumeration: name must not be blank")

	// ErrNotFound is returned by lookups when no member matches the key.
	ErrNotFound = errors.New("enumeration: member not found")

	// ErrDuplicateValue is returned when a set declares one value twice.
	ErrDuplicateValue = errors.New("enumeration: duplicate value")

	// ErrDuplicateName is returned when a set declares one name twice.
	ErrDuplicateName = errors.New("enumeration: duplicate name")
)
