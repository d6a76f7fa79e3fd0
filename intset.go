package intset

// DefaultCapacity is the backing array size used when a capacity
// hint is omitted or invalid.
const DefaultCapacity = 10

// IntSet - a set of distinct ints backed by one contiguous array.
//
// Members occupy positions 0..used-1 of the backing array in order of
// the insertion still in effect: removing a value and inserting it
// again places it at the end, while inserting an already present
// value changes nothing. len(data) is the capacity; it is always at
// least 1, never below used, and slots from used onward hold no
// meaningful data. The backing array is never shared between
// instances.
//
// IntSet is not safe for concurrent use.
type IntSet struct {
	data []int
	used int
}

// New creates an empty IntSet with DefaultCapacity.
func New() *IntSet {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates an empty IntSet with the given capacity
// hint. A non-positive hint falls back to DefaultCapacity.
func NewWithCapacity(capacity int) *IntSet {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &IntSet{data: make([]int, capacity)}
}

// From creates an IntSet holding the distinct values of items, in
// first-occurrence order.
func From(items ...int) *IntSet {
	s := NewWithCapacity(len(items))
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// resize reallocates the backing array to newCapacity without
// changing the logical contents. A non-positive newCapacity falls
// back to DefaultCapacity; a value below the current count is raised
// to exactly the count, or to 1 when the set is empty. The new array
// is allocated before the old one is dropped. Must not run before
// construction has produced a valid set.
func (s *IntSet) resize(newCapacity int) {
	var capacity int
	switch {
	case newCapacity <= 0:
		capacity = DefaultCapacity
	case newCapacity < s.used:
		capacity = s.used
	default:
		capacity = newCapacity
	}
	if capacity < 1 {
		capacity = 1
	}

	newData := make([]int, capacity)
	copy(newData, s.data[:s.used])
	s.data = newData
}

// Len returns the number of members.
func (s *IntSet) Len() int {
	return s.used
}

// Capacity returns the size of the backing array. It never shrinks.
func (s *IntSet) Capacity() int {
	return len(s.data)
}

func (s *IntSet) IsEmpty() bool {
	return s.used == 0
}

// Has reports whether item is a member.
func (s *IntSet) Has(item int) bool {
	for i := 0; i < s.used; i++ {
		if s.data[i] == item {
			return true
		}
	}
	return false
}

// Insert adds item unless it is already a member. It reports whether
// the set was modified. A new member becomes the most recently
// inserted one; growth requests capacity*3/2+1, which is strictly
// larger even at capacity 1.
func (s *IntSet) Insert(item int) (modified bool) {
	if s.Has(item) {
		return false
	}

	if s.used == len(s.data) {
		s.resize(len(s.data)*3/2 + 1)
	}

	s.data[s.used] = item
	s.used++
	return true
}

// Remove deletes item if present, shifting later members one position
// left so their relative order is kept. It reports whether the set
// was modified. Capacity is unchanged.
func (s *IntSet) Remove(item int) bool {
	for i := 0; i < s.used; i++ {
		if s.data[i] == item {
			copy(s.data[i:s.used-1], s.data[i+1:s.used])
			s.used--
			return true
		}
	}
	return false
}

// Clear empties the set. The backing array is retained.
func (s *IntSet) Clear() {
	s.used = 0
}

// IsSubsetOf reports whether every member of s is a member of other.
// An empty set is a subset of anything.
func (s *IntSet) IsSubsetOf(other *IntSet) bool {
	for i := 0; i < s.used; i++ {
		if !other.Has(s.data[i]) {
			return false
		}
	}
	return true
}

// Equal reports set equality: each of a and b is a subset of the
// other. Insertion order is ignored.
func Equal(a, b *IntSet) bool {
	return a.IsSubsetOf(b) && b.IsSubsetOf(a)
}

// Union returns a new set holding every member of s followed by the
// members of other that s lacks, in other's order. Neither operand is
// modified.
func (s *IntSet) Union(other *IntSet) *IntSet {
	result := s.Copy()
	for i := 0; i < other.used; i++ {
		result.Insert(other.data[i])
	}
	return result
}

// Intersect returns a new set holding the members present in both s
// and other, in s's order. Neither operand is modified.
func (s *IntSet) Intersect(other *IntSet) *IntSet {
	result := s.Copy()
	for i := 0; i < s.used; i++ {
		if !other.Has(s.data[i]) {
			result.Remove(s.data[i])
		}
	}
	return result
}

// Subtract returns a new set holding the members of s absent from
// other, in s's order. Neither operand is modified.
func (s *IntSet) Subtract(other *IntSet) *IntSet {
	result := s.Copy()
	for i := 0; i < other.used; i++ {
		result.Remove(other.data[i])
	}
	return result
}

// Copy returns an independent duplicate of s: same capacity, same
// count, freshly allocated backing array with every slot copied.
func (s *IntSet) Copy() *IntSet {
	data := make([]int, len(s.data))
	copy(data, s.data)
	return &IntSet{data: data, used: s.used}
}

// Assign replaces the contents of s with a deep copy of src and
// adopts src's capacity. Assigning a set to itself is a no-op. The
// receiver is returned so assignments can be chained.
func (s *IntSet) Assign(src *IntSet) *IntSet {
	if s == src {
		return s
	}

	data := make([]int, len(src.data))
	copy(data, src.data[:src.used])
	s.data = data
	s.used = src.used
	return s
}

// Items returns the members in stored order as a fresh slice.
func (s *IntSet) Items() []int {
	items := make([]int, s.used)
	copy(items, s.data[:s.used])
	return items
}
