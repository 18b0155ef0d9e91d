package enumeration

// Compare orders two members by numeric value, for use with
// slices.SortFunc. Members of different enumerations never meet here;
// the type parameter keeps the comparison within one set.
func Compare[T Valued](a, b T) int {
	av, bv := a.Value(), b.Value()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

// ComparePtr orders two possibly-absent members; an absent member sorts
// before any present one.
func ComparePtr[T Valued](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return Compare(*a, *b)
}
