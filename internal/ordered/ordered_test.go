package ordered

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type word string

func (w word) Compare(other word) int { return strings.Compare(string(w), string(other)) }

func TestSet_SortedIteration(t *testing.T) {
	s := NewSet[word]("pear", "apple", "fig", "apple")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []word{"apple", "fig", "pear"}, s.Items())
	assert.True(t, s.Contains("fig"))
	assert.False(t, s.Contains("kiwi"))
}

func TestSet_InsertionOrderIndependent(t *testing.T) {
	a := NewSet[word]("c", "a", "b")
	b := NewSet[word]("b", "c", "a")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Items(), b.Items())
	assert.Equal(t, "[a b c]", a.String())
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[word]

	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Items())
	assert.Empty(t, s.Items())
	assert.True(t, s.Insert("a"))
	assert.False(t, s.Insert("a"))
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := NewSet[word]("a")
	c := s.Clone()
	c.Insert("b")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
	assert.False(t, s.Equal(c))
}

func TestSet_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Set[word]
		want bool
	}{
		{name: "both empty", want: true},
		{name: "zero vs allocated empty", a: Set[word]{}, b: NewSet[word](), want: true},
		{name: "same items", a: NewSet[word]("x", "y"), b: NewSet[word]("y", "x"), want: true},
		{name: "different sizes", a: NewSet[word]("x"), b: NewSet[word]("x", "y"), want: false},
		{name: "different items", a: NewSet[word]("x"), b: NewSet[word]("y"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestMap_SortedKeys(t *testing.T) {
	var m Map[word, int]
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []word{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Get("d")
	assert.False(t, ok)
}

func TestMap_SetReplaces(t *testing.T) {
	m := NewMap[word, int]()
	m.Set("a", 1)
	m.Set("a", 2)

	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len())
}

func TestMap_Equal(t *testing.T) {
	var a, b Map[word, Set[word]]
	a.Set("k", NewSet[word]("1", "2"))
	b.Set("k", NewSet[word]("2", "1"))
	assert.True(t, a.Equal(b, Set[word].Equal))

	b.Set("k", NewSet[word]("1"))
	assert.False(t, a.Equal(b, Set[word].Equal))

	b.Set("j", NewSet[word]())
	assert.False(t, a.Equal(b, Set[word].Equal))
}

func TestMap_CloneDeepCopiesValues(t *testing.T) {
	var m Map[word, Set[word]]
	m.Set("k", NewSet[word]("v"))

	c := m.Clone(Set[word].Clone)
	inner, _ := c.Get("k")
	inner.Insert("w")

	orig, _ := m.Get("k")
	assert.Equal(t, 1, orig.Len())
}
