package value

import (
	"fmt"
	"hash/fnv"
	"io"
)

// Type identifies the logical domain type of a value. Wrapper and
// decorator types forward the Type of the value they wrap so that
// equality sees through the wrapping layer. Two values can only be equal
// when their Types match.
type Type string

// Object is a value compared by its components rather than by identity.
//
// EqualityComponents must return the same components for an unchanged
// value on every call, and every component must be Go-comparable (usable
// as a map key).
type Object interface {
	// LogicalType names the domain type this value belongs to.
	LogicalType() Type

	// EqualityComponents returns the ordered components that define
	// equality for this value.
	EqualityComponents() []any
}

// Equal reports whether two values are structurally equal: both absent,
// or both present with one logical type and pairwise equal components.
// An absent value never equals a present one.
func Equal(a, b Object) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.LogicalType() != b.LogicalType() {
		return false
	}
	ac := a.EqualityComponents()
	bc := b.EqualityComponents()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: equal values hash to the
// same number, and the hash of a given value is stable for the lifetime
// of the process. Hash of nil is the hash of the empty input.
func Hash(o Object) uint64 {
	h := fnv.New64a()
	if o == nil {
		return h.Sum64()
	}
	io.WriteString(h, string(o.LogicalType()))
	for i, c := range o.EqualityComponents() {
		fmt.Fprintf(h, "\x1f%d=%v", i, c)
	}
	return h.Sum64()
}
