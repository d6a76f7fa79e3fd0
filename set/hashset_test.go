package set_test

import (
	"sort"
	"testing"

	"github.com/savorymaxwell/intset/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Insert(t *testing.T) {
	t.Run("insert reports modification only for new items", func(t *testing.T) {
		s := set.NewHashSet[string]()

		assert.True(t, s.Insert("foo"))
		assert.True(t, s.Insert("bar"))
		assert.False(t, s.Insert("foo"))

		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("foo"))
		assert.True(t, s.Has("bar"))
		assert.False(t, s.Has("baz"))
	})

	t.Run("constructor seeds distinct items", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar", "foo")

		assert.Equal(t, 2, s.Len())

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"bar", "foo"}, items)
	})
}

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "baz", "foo"}, items)
		assert.False(t, s.Has("bar"))
	})

	t.Run("remove missing item reports false", func(t *testing.T) {
		s := set.NewHashSet("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestHashSet_Clear(t *testing.T) {
	s := set.NewHashSet(1, 2, 3)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.Empty(t, s.Items())
}

func TestHashSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewHashSet(3)
		s2 := set.NewHashSet(9)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.True(t, s1.Has(3))
		assert.True(t, s1.Has(9))
		assert.False(t, s1.Has(1))
	})

	t.Run("no overlap reports no modification", func(t *testing.T) {
		s1 := set.NewHashSet(3, 9)
		s2 := set.NewHashSet(9, 3)

		assert.False(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
	})
}

func TestHashSet_InsertSlice(t *testing.T) {
	s := set.NewHashSet(3)

	assert.True(t, s.InsertSlice([]int{9, 3}))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(9))
	assert.False(t, s.Has(1))
}
