package hashmap

// Map associates unique keys with values
type Map[K comparable, V any] struct {
	elements map[K]V
}

// New creates an empty map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{elements: make(map[K]V)}
}

// NewWithElements creates a map holding a copy of elements
func NewWithElements[K comparable, V any](elements map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range elements {
		m.elements[k] = v
	}
	return m
}

// Add sets the value for k, updating it if k is already present
func (m *Map[K, V]) Add(k K, v V) {
	m.elements[k] = v
}

// Update sets the value for k only if k is already present.
// It returns false if the key was not found
func (m *Map[K, V]) Update(k K, v V) bool {
	if !m.Contains(k) {
		return false
	}

	m.elements[k] = v
	return true
}

// Remove drops the value for k, if any
func (m *Map[K, V]) Remove(k K) {
	delete(m.elements, k)
}

// RemoveAll drops every element
func (m *Map[K, V]) RemoveAll() {
	m.elements = make(map[K]V)
}

// Contains returns true if k has a value
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.elements[k]
	return ok
}

// Value returns the value for k
func (m *Map[K, V]) Value(k K) (V, bool) {
	v, ok := m.elements[k]
	return v, ok
}

// Len returns the number of keys
func (m *Map[K, V]) Len() int {
	return len(m.elements)
}

// Empty returns true if the map has no keys
func (m *Map[K, V]) Empty() bool {
	return len(m.elements) == 0
}

// Keys returns the keys of the map in no particular order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.elements))
	for k := range m.elements {
		keys = append(keys, k)
	}
	return keys
}
