package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet - a set that iterates in insertion order. Removing an
// item and inserting it again moves it to the end; inserting an item
// that is already present leaves its position alone.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T], len(items)),
		list: dll.New[T](),
	}
	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
