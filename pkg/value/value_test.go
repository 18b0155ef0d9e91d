package value

import (
	"sync"
	"sync/atomic"
	"testing"
)

type money struct {
	amount   int64
	currency string
}

func (money) LogicalType() Type { return "billing.Money" }

func (m money) EqualityComponents() []any { return []any{m.amount, m.currency} }

// taggedMoney wraps money and forwards its logical type, the way a
// decorating layer would.
type taggedMoney struct {
	inner money
	tag   string
}

func (w taggedMoney) LogicalType() Type { return w.inner.LogicalType() }

func (w taggedMoney) EqualityComponents() []any { return w.inner.EqualityComponents() }

type coupon struct {
	amount   int64
	currency string
}

func (coupon) LogicalType() Type { return "billing.Coupon" }

func (c coupon) EqualityComponents() []any { return []any{c.amount, c.currency} }

type pair struct {
	first  any
	second any
}

func (pair) LogicalType() Type { return "test.Pair" }

func (p pair) EqualityComponents() []any { return []any{p.first, p.second} }

func TestEqual(t *testing.T) {
	usd10 := money{amount: 10, currency: "USD"}

	tests := []struct {
		name string
		a    Object
		b    Object
		want bool
	}{
		{"same components", money{10, "USD"}, money{10, "USD"}, true},
		{"same instance", usd10, usd10, true},
		{"different amount", money{10, "USD"}, money{11, "USD"}, false},
		{"different currency", money{10, "USD"}, money{10, "EUR"}, false},
		{"different logical type", money{10, "USD"}, coupon{10, "USD"}, false},
		{"wrapper forwards logical type", taggedMoney{inner: money{10, "USD"}, tag: "promo"}, money{10, "USD"}, true},
		{"both nil", nil, nil, true},
		{"nil vs present", nil, money{10, "USD"}, false},
		{"present vs nil", money{10, "USD"}, nil, false},
		{"nil components match", pair{nil, "x"}, pair{nil, "x"}, true},
		{"nil component position matters", pair{nil, "x"}, pair{"x", nil}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEqual_Transitive(t *testing.T) {
	a := money{5, "KRW"}
	b := money{5, "KRW"}
	c := money{5, "KRW"}

	if !Equal(a, b) || !Equal(b, c) {
		t.Fatal("premise failed: a, b, c should be pairwise equal")
	}
	if !Equal(a, c) {
		t.Error("Equal(a, c) = false, want true when Equal(a, b) and Equal(b, c)")
	}
}

func TestHash(t *testing.T) {
	a := money{10, "USD"}
	b := money{10, "USD"}

	if Hash(a) != Hash(b) {
		t.Errorf("Hash(a) = %d, Hash(b) = %d, want equal for equal values", Hash(a), Hash(b))
	}
	if Hash(a) != Hash(a) {
		t.Error("Hash is not stable across calls")
	}
	if Hash(money{10, "USD"}) == Hash(money{11, "USD"}) {
		t.Error("Hash collides for values differing in one component")
	}
	if Hash(money{10, "USD"}) == Hash(coupon{10, "USD"}) {
		t.Error("Hash collides across logical types with identical components")
	}
}

func TestHash_Nil(t *testing.T) {
	if Hash(nil) != Hash(nil) {
		t.Error("Hash(nil) is not stable")
	}
}

func TestHash_WrapperMatchesWrapped(t *testing.T) {
	wrapped := taggedMoney{inner: money{10, "USD"}, tag: "promo"}
	plain := money{10, "USD"}

	if Hash(wrapped) != Hash(plain) {
		t.Errorf("Hash(wrapped) = %d, want %d (same as the wrapped value)", Hash(wrapped), Hash(plain))
	}
}

// heavy simulates a value whose components are expensive to assemble.
type heavy struct {
	HashCache
	id    string
	calls *atomic.Int32
}

func (h *heavy) LogicalType() Type { return "test.Heavy" }

func (h *heavy) EqualityComponents() []any {
	h.calls.Add(1)
	return []any{h.id}
}

func TestHashCache_Memoizes(t *testing.T) {
	h := &heavy{id: "a", calls: new(atomic.Int32)}

	first := h.HashOnce(h)
	second := h.HashOnce(h)

	if first != second {
		t.Errorf("HashOnce returned %d then %d, want identical results", first, second)
	}
	if got := h.calls.Load(); got != 1 {
		t.Errorf("EqualityComponents called %d times, want 1", got)
	}

	fresh := &heavy{id: "a", calls: new(atomic.Int32)}
	if first != Hash(fresh) {
		t.Errorf("HashOnce = %d, want %d (same as Hash of an equal value)", first, Hash(fresh))
	}
}

func TestHashCache_ConcurrentFirstUse(t *testing.T) {
	h := &heavy{id: "a", calls: new(atomic.Int32)}

	const goroutines = 100
	results := make([]uint64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.HashOnce(h)
		}(i)
	}
	wg.Wait()

	if got := h.calls.Load(); got != 1 {
		t.Errorf("EqualityComponents called %d times under contention, want 1", got)
	}
	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("results[%d] = %d, want %d", i, results[i], results[0])
		}
	}
}
