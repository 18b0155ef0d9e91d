package entity

import (
	"fmt"
	"hash/fnv"
	"io"
)

// IdentityComparer compares entities by identity rather than by content.
// The zero value is ready to use.
//
// Equality rules, in order: two nils are equal; nil never equals a
// present entity; an entity equals itself; different logical types are
// never equal; otherwise the identifiers decide. Transient entities carry
// the zero identifier, so two transient entities of one family are equal
// and a transient entity never equals a persisted one.
type IdentityComparer[ID comparable] struct{}

// Equal reports whether a and b refer to the same domain identity.
func (IdentityComparer[ID]) Equal(a, b Identifiable[ID]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if a.LogicalType() != b.LogicalType() {
		return false
	}
	return a.ID() == b.ID()
}

// Hash returns a hash consistent with Equal, derived from the logical
// type and the identifier. All transient entities of one family share a
// hash. Hash of nil is the hash of the empty input.
func (IdentityComparer[ID]) Hash(e Identifiable[ID]) uint64 {
	h := fnv.New64a()
	if e == nil {
		return h.Sum64()
	}
	io.WriteString(h, string(e.LogicalType()))
	fmt.Fprintf(h, "\x1f%v", e.ID())
	return h.Sum64()
}
