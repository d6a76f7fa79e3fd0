package set

// Union inserts every item of a, then every item of b, into out and
// returns out. With an ordered out, a's items precede b's novel ones.
func Union[T comparable](out, a, b Set[T]) Set[T] {
	for _, item := range a.Items() {
		out.Insert(item)
	}
	for _, item := range b.Items() {
		out.Insert(item)
	}
	return out
}

// Intersect inserts into out the items of a that b also has, and
// returns out.
func Intersect[T comparable](out, a, b Set[T]) Set[T] {
	for _, item := range a.Items() {
		if b.Has(item) {
			out.Insert(item)
		}
	}
	return out
}

// Difference inserts into out the items of a that b lacks, and
// returns out.
func Difference[T comparable](out, a, b Set[T]) Set[T] {
	for _, item := range a.Items() {
		if !b.Has(item) {
			out.Insert(item)
		}
	}
	return out
}

// IsSubset reports whether b has every item of a. An empty a is a
// subset of anything.
func IsSubset[T comparable](a, b Set[T]) bool {
	for _, item := range a.Items() {
		if !b.Has(item) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same items, regardless of
// order.
func Equal[T comparable](a, b Set[T]) bool {
	return a.Len() == b.Len() && IsSubset(a, b)
}
