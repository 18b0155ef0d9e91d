package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/domainkit/pkg/value"
)

func TestUnit_Equality(t *testing.T) {
	if Value != (Unit{}) {
		t.Error("Value != Unit{}, want all units identical")
	}
	if !value.Equal(Value, Unit{}) {
		t.Error("value.Equal(Value, Unit{}) = false, want true")
	}
	if value.Hash(Value) != value.Hash(Unit{}) {
		t.Error("unit hashes differ, want one constant")
	}
}

func TestUnit_String(t *testing.T) {
	if got := Value.String(); got != "()" {
		t.Errorf("String() = %q, want %q", got, "()")
	}
}

func TestDo(t *testing.T) {
	ran := false
	got := Do(func() { ran = true })

	if !ran {
		t.Error("Do did not run the function")
	}
	if got != Value {
		t.Errorf("Do() = %v, want %v", got, Value)
	}
}

func TestCall(t *testing.T) {
	boom := errors.New("boom")

	_, err := Call(func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Call() error = %v, want %v", err, boom)
	}

	u, err := Call(func() error { return nil })
	if err != nil {
		t.Errorf("Call() error = %v, want nil", err)
	}
	if u != Value {
		t.Errorf("Call() = %v, want %v", u, Value)
	}
}

func TestWait_Completion(t *testing.T) {
	done := make(chan struct{})
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(done)
	}()

	u, err := Wait(context.Background(), done)
	if err != nil {
		t.Fatalf("Wait() error = %v, want nil", err)
	}
	if u != Value {
		t.Errorf("Wait() = %v, want %v", u, Value)
	}
}

func TestWait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Wait(ctx, make(chan struct{}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want %v", err, context.Canceled)
	}
}
