// Package fault provides a domain error value: a machine-readable code
// paired with a human-readable message.
//
// Declare the conditions a domain can raise as values:
//
//	var ErrInsufficientFunds = fault.New("billing.insufficient_funds",
//		"the account balance does not cover the amount")
//
// Two faults with one code are the same condition even when their
// messages differ; the message exists for people, the code for program
// logic. The rendered form is always "{code}: {message}".
//
// Faults work with the standard error machinery:
//
//	if errors.Is(err, ErrInsufficientFunds) { ... }
//
// and participate in value.Equal and value.Hash as value objects whose
// only equality component is the code.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package fault
