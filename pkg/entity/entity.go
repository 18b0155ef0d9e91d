package entity

import "github.com/bft-labs/domainkit/pkg/value"

// Identifiable is the identity surface every entity exposes.
// Pointer-shaped types embedding Base satisfy it.
type Identifiable[ID comparable] interface {
	// ID returns the identifier, the zero value while transient.
	ID() ID

	// IsTransient reports whether no identifier has been assigned.
	IsTransient() bool

	// LogicalType names the entity family the identity belongs to.
	LogicalType() value.Type
}

// Base carries the identity of an entity. Attribute storage and its
// synchronization belong to the embedding type.
type Base[ID comparable] struct {
	typ value.Type
	id  ID
}

// New returns a Base with the given identifier. A zero identifier is
// legal and yields a transient entity.
func New[ID comparable](t value.Type, id ID) Base[ID] {
	return Base[ID]{typ: t, id: id}
}

// NewTransient returns a Base with no identifier assigned yet.
func NewTransient[ID comparable](t value.Type) Base[ID] {
	return Base[ID]{typ: t}
}

// ID returns the current identifier, the zero value while transient.
func (b *Base[ID]) ID() ID { return b.id }

// SetID assigns the identifier, typically once persistence has produced
// one. Not synchronized; callers confine concurrent writes themselves.
func (b *Base[ID]) SetID(id ID) { b.id = id }

// IsTransient reports whether the identifier still equals the zero value
// of ID, meaning the entity has not been persisted.
func (b *Base[ID]) IsTransient() bool {
	var zero ID
	return b.id == zero
}

// LogicalType returns the entity family marker. Subtypes that must share
// one conceptual identity pass the same marker to their bases.
func (b *Base[ID]) LogicalType() value.Type { return b.typ }

var _ Identifiable[int] = (*Base[int])(nil)
