// package gomap provides a container.Mapper implementation
// backed by Go's native map for benchmark reference.
package gomap

type KeyInterface interface {
	string | []byte
}

type Gomap[K KeyInterface, V any] struct {
	m map[string]V
}

func New[K KeyInterface, V any](capacity int) *Gomap[K, V] {
	return &Gomap[K, V]{
		m: make(map[string]V, capacity),
	}
}

func (m *Gomap[K, V]) Set(key K, value V) {
	m.m[string(key)] = value
}

func (m *Gomap[K, V]) Delete(key K) {
	delete(m.m, string(key))
}

func (m *Gomap[K, V]) Get(key K) (v V, ok bool) {
	v, ok = m.m[string(key)]
	return v, ok
}

// Reset removes all entries keeping the allocated buckets.
func (m *Gomap[K, V]) Reset() {
	clear(m.m)
}

func (m *Gomap[K, V]) Len() int {
	return len(m.m)
}

// Visit calls fn for every stored key-value pair in unspecified
// order. Returns immediately if fn returns true.
func (m *Gomap[K, V]) Visit(fn func(K, V) bool) {
	for k, v := range m.m {
		if fn(K(k), v) {
			break
		}
	}
}
