package unit

import (
	"context"

	"github.com/bft-labs/domainkit/pkg/value"
)

// Unit is the single-valued type. Its zero value is the value.
type Unit struct{}

// Value is the canonical Unit.
var Value = Unit{}

var _ value.Object = Unit{}

// String renders the canonical empty-tuple form.
func (Unit) String() string { return "()" }

// LogicalType marks all units as one logical type.
func (Unit) LogicalType() value.Type { return "unit.Unit" }

// EqualityComponents is empty: units are indistinguishable, so every
// Unit equals every other and all hash to one constant.
func (Unit) EqualityComponents() []any { return nil }

// Do runs a side effect and returns Value, lifting the call into
// unit-returning form.
func Do(fn func()) Unit {
	fn()
	return Value
}

// Call runs a fallible side effect, returning Value and the function's
// error verbatim.
func Call(fn func() error) (Unit, error) {
	return Value, fn()
}

// Wait projects asynchronous completion to a Unit: it returns when done
// is closed, or with the context error when ctx ends first.
func Wait(ctx context.Context, done <-chan struct{}) (Unit, error) {
	select {
	case <-done:
		return Value, nil
	case <-ctx.Done():
		return Value, ctx.Err()
	}
}
