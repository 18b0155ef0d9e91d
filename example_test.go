package domainkit_test

import (
	"errors"
	"fmt"

	"github.com/bft-labs/domainkit"
	"github.com/bft-labs/domainkit/pkg/enumeration"
)

// PaymentState is a hand-written enumeration. Generated enums produced by
// cmd/enumgen have exactly this shape.
type PaymentState struct {
	domainkit.Member
}

func (PaymentState) LogicalType() domainkit.LogicalType { return "payments.PaymentState" }

var (
	Authorized = PaymentState{domainkit.MustMember(1, "Authorized")}
	Captured   = PaymentState{domainkit.MustMember(2, "Captured")}
	Refunded   = PaymentState{domainkit.MustMember(3, "Refunded")}
)

var PaymentStates = enumeration.NewSet("PaymentState", Authorized, Captured, Refunded)

// Example demonstrates declaring a closed enumeration and looking members up.
func Example() {
	state, err := PaymentStates.FromName("Captured")
	if err != nil {
		fmt.Printf("lookup failed: %v\n", err)
		return
	}
	fmt.Printf("%s = %d\n", state, state.Value())

	if _, err := PaymentStates.FromValue(42); err != nil {
		fmt.Println("42 is not a payment state")
	}

	all, _ := PaymentStates.All()
	for _, s := range all {
		fmt.Println(s.Name())
	}

	// Output:
	// Captured = 2
	// 42 is not a payment state
	// Authorized
	// Captured
	// Refunded
}

// ExampleNewMember demonstrates member validation.
func ExampleNewMember() {
	m, err := domainkit.NewMember(1, "Active")
	if err != nil {
		fmt.Printf("invalid member: %v\n", err)
		return
	}
	fmt.Printf("%d %s\n", m.Value(), m.Name())

	if _, err := domainkit.NewMember(-1, "Negative"); err != nil {
		fmt.Println("negative values are rejected")
	}

	// Output:
	// 1 Active
	// negative values are rejected
}

// ExampleNewError demonstrates that coded errors match by code alone.
func ExampleNewError() {
	notFound := domainkit.NewError("ORDER_NOT_FOUND", "order does not exist")

	err := domainkit.NewError("ORDER_NOT_FOUND", "order 42 was archived")
	fmt.Println(err)
	fmt.Println(errors.Is(err, notFound))

	// Output:
	// ORDER_NOT_FOUND: order 42 was archived
	// true
}

// ExampleEqual demonstrates structural equality of value objects.
func ExampleEqual() {
	a := domainkit.NewError("TIMEOUT", "first message")
	b := domainkit.NewError("TIMEOUT", "second message")

	fmt.Println(domainkit.Equal(a, b))
	fmt.Println(domainkit.Hash(a) == domainkit.Hash(b))

	// Output:
	// true
	// true
}

// Example_unit demonstrates the unit result for side-effecting operations.
func Example_unit() {
	fmt.Println(domainkit.UnitValue)

	// Output:
	// ()
}

// Example_moduleVersions demonstrates version checking.
func Example_moduleVersions() {
	fmt.Printf("domainkit version: %s\n", domainkit.Version)
	fmt.Printf("modules: %d\n", len(domainkit.ModuleVersions()))
	fmt.Printf("compatible: %v\n", domainkit.ValidateModuleVersions() == nil)

	// Output:
	// domainkit version: 1.0.0
	// modules: 6
	// compatible: true
}
