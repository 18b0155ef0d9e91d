package enumeration

import (
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	if got := Compare(active, suspended); got != -1 {
		t.Errorf("Compare(active, suspended) = %d, want -1", got)
	}
	if got := Compare(suspended, active); got != 1 {
		t.Errorf("Compare(suspended, active) = %d, want 1", got)
	}
	if got := Compare(active, active); got != 0 {
		t.Errorf("Compare(active, active) = %d, want 0", got)
	}
}

func TestComparePtr(t *testing.T) {
	a := active
	b := suspended

	tests := []struct {
		name string
		x    *status
		y    *status
		want int
	}{
		{"both nil", nil, nil, 0},
		{"nil sorts first", nil, &a, -1},
		{"present after nil", &a, nil, 1},
		{"by value", &a, &b, -1},
		{"equal", &a, &a, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComparePtr(tt.x, tt.y); got != tt.want {
				t.Errorf("ComparePtr() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompare_SortsSlices(t *testing.T) {
	members := []status{closed, active, suspended}

	slices.SortFunc(members, Compare)

	want := []status{active, suspended, closed}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("members[%d] = %v, want %v", i, members[i], want[i])
		}
	}
}
