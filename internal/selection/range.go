package selection

// Resolve returns the inclusive index range spanned by a and b.
func Resolve(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// indexOf returns the position of id in items, or -1 if it is absent.
func indexOf[K comparable](items []K, id K) int {
	for i, item := range items {
		if item == id {
			return i
		}
	}
	return -1
}
