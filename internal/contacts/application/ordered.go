package application

// orderedMap is an id-keyed collection that remembers insertion order.
// Replacing an existing id keeps its position.
type orderedMap[V any] struct {
	keys   []int
	values map[int]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[int]V)}
}

func (m *orderedMap[V]) put(id int, v V) {
	if _, ok := m.values[id]; !ok {
		m.keys = append(m.keys, id)
	}
	m.values[id] = v
}

func (m *orderedMap[V]) get(id int) (V, bool) {
	v, ok := m.values[id]
	return v, ok
}

func (m *orderedMap[V]) has(id int) bool {
	_, ok := m.values[id]
	return ok
}

func (m *orderedMap[V]) len() int { return len(m.keys) }

// nextID is one more than the largest key, or 1 when empty.
func (m *orderedMap[V]) nextID() int {
	highest := 0
	for _, k := range m.keys {
		highest = max(highest, k)
	}
	return highest + 1
}

// all returns the values in insertion order.
func (m *orderedMap[V]) all() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// filter returns the values matching keep, in insertion order.
func (m *orderedMap[V]) filter(keep func(V) bool) []V {
	out := make([]V, 0)
	for _, k := range m.keys {
		if v := m.values[k]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
