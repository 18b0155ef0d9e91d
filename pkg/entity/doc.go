// Package entity provides identity for domain objects: typed identifiers,
// a transient state for objects not yet persisted, and an identifier-based
// equivalence relation.
//
// Embed Base in a domain type and construct it with New or NewTransient:
//
//	type User struct {
//		entity.Base[int64]
//		Email string
//	}
//
//	u := &User{Base: entity.NewTransient[int64]("iam.User")}
//	u.IsTransient() // true until SetID
//
// An entity is transient while its identifier equals the zero value of the
// identifier type; persistence assigns the real identifier through SetID.
//
// # Identity comparison
//
// Entities are NOT compared with a blanket equality: attribute-for-attribute
// comparison is meaningless for identity-bearing objects. IdentityComparer
// compares by logical type and identifier only:
//
//	var cmp entity.IdentityComparer[int64]
//	cmp.Equal(a, b)
//
// Two transient entities of one family are equal to each other and never
// equal to a persisted one. Families of types that must share one identity
// (wrappers, decorated variants) pass the same logical type marker to
// their bases.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package entity
