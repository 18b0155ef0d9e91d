package fault

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/bft-labs/domainkit/pkg/value"
)

func TestError_Rendering(t *testing.T) {
	e := New("billing.insufficient_funds", "the balance does not cover the amount")

	if got := e.Error(); got != "billing.insufficient_funds: the balance does not cover the amount" {
		t.Errorf("Error() = %q, want the {code}: {message} form", got)
	}
	if got := e.Code(); got != "billing.insufficient_funds" {
		t.Errorf("Code() = %q", got)
	}
	if got := e.Message(); got != "the balance does not cover the amount" {
		t.Errorf("Message() = %q", got)
	}
}

func TestError_EqualityByCode(t *testing.T) {
	a := New("card.declined", "declined by issuer")
	b := New("card.declined", "try another card")
	c := New("card.expired", "declined by issuer")

	if !value.Equal(a, b) {
		t.Error("faults with one code but different messages compare unequal")
	}
	if value.Equal(a, c) {
		t.Error("faults with different codes compare equal")
	}
	if value.Hash(a) != value.Hash(b) {
		t.Error("faults with one code hash differently")
	}
}

func TestError_ErrorsIs(t *testing.T) {
	declined := New("card.declined", "declined by issuer")

	got := fmt.Errorf("charge customer: %w", New("card.declined", "issuer said no"))
	if !errors.Is(got, declined) {
		t.Error("errors.Is = false for a wrapped fault with the same code")
	}

	other := fmt.Errorf("charge customer: %w", New("card.expired", "expired"))
	if errors.Is(other, declined) {
		t.Error("errors.Is = true across different codes")
	}

	if errors.Is(errors.New("card.declined: declined by issuer"), declined) {
		t.Error("errors.Is = true for a plain error that merely renders alike")
	}
}

func TestError_JSON(t *testing.T) {
	e := New("card.declined", "declined by issuer")

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"code":"card.declined","message":"declined by issuer"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded Error
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != e {
		t.Errorf("round trip = %+v, want %+v", decoded, e)
	}
}
