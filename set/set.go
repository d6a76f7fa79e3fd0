package set

// Set is the contract shared by the implementations in this package.
// Items returns a fresh snapshot slice; ordered implementations
// return members in insertion order, unordered ones in no particular
// order.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
}
