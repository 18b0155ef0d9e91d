// Package value provides structural equality and hashing for immutable
// domain values.
//
// A value object is defined by what it holds, not by which instance it is.
// Implement Object by naming a logical type and listing the components
// that define the value:
//
//	type Money struct {
//		Amount   int64
//		Currency string
//	}
//
//	func (Money) LogicalType() value.Type     { return "billing.Money" }
//	func (m Money) EqualityComponents() []any { return []any{m.Amount, m.Currency} }
//
// Then compare and hash through the package functions:
//
//	if value.Equal(a, b) { ... }
//	key := value.Hash(a)
//
// Components must be pure (an unchanged value always yields the same
// components) and Go-comparable, the same contract as a map key. Nil
// components are allowed and positionally significant.
//
// # Wrapped values
//
// A type that wraps or decorates another value forwards the wrapped
// value's LogicalType so both sides of a comparison resolve to the same
// logical type no matter how many layers sit in between.
//
// # Hash caching
//
// Values whose component lists are expensive to assemble can embed a
// HashCache and serve their hash through HashOnce. The cache computes the
// hash once per instance and is only suitable for pointer-shaped values;
// it must not be copied after first use.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package value
