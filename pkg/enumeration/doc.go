// Package enumeration provides closed sets of named integer constants
// with validated lookup by value and by name.
//
// An enumeration is a struct embedding Member, declared once per constant,
// plus a Set registering every member:
//
//	type Status struct {
//		enumeration.Member
//	}
//
//	var (
//		Active    = Status{enumeration.MustMember(1, "Active")}
//		Suspended = Status{enumeration.MustMember(2, "Suspended")}
//	)
//
//	var Statuses = enumeration.NewSet("Status", Active, Suspended)
//
// Lookups go through the set:
//
//	s, err := Statuses.FromValue(1)
//	s, ok := Statuses.TryFromName("Active")
//
// Registration is explicit: the set is told its members rather than
// discovering them, so the closed set is visible in one place and needs
// no runtime scanning. The enumgen tool generates these declarations from
// a manifest.
//
// # Validation
//
// The set builds its lookup indexes on first use, exactly once, and
// validates while building: negative values, blank names, duplicate
// values, and duplicate names are configuration errors. The outcome is
// cached, so a misdeclared set reports the same error from every
// operation. Call Validate to surface problems eagerly.
//
// # Equality
//
// Members are equal when their numeric values are equal; names are
// display metadata. Embedding types supply a LogicalType and thereby
// participate in value.Equal and value.Hash.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package enumeration
