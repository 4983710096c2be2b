package ordered

import "slices"

// Map associates keys with values and iterates in sorted key order.
// The zero value is an empty map ready to use.
type Map[K Item[K], V any] struct {
	entries map[K]V
}

// NewMap creates an empty map.
func NewMap[K Item[K], V any]() Map[K, V] {
	return Map[K, V]{entries: make(map[K]V)}
}

// Set stores value under key, replacing any existing value.
func (m *Map[K, V]) Set(key K, value V) {
	if m.entries == nil {
		m.entries = make(map[K]V)
	}
	m.entries[key] = value
}

// Get returns the value stored under key.
func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in sorted order. The returned slice is never nil.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int { return a.Compare(b) })
	return keys
}

// Clone returns a copy of the map. cloneValue copies each value; pass nil
// when values need no deep copy.
func (m Map[K, V]) Clone(cloneValue func(V) V) Map[K, V] {
	out := Map[K, V]{entries: make(map[K]V, len(m.entries))}
	for k, v := range m.entries {
		if cloneValue != nil {
			v = cloneValue(v)
		}
		out.entries[k] = v
	}
	return out
}

// Equal reports whether both maps hold the same keys with values equal under eq.
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := other.entries[k]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}
