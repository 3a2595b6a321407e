package container

// KeyInterface is the set of key types supported by
// Mapper implementations.
type KeyInterface interface {
	string | []byte
}

// Mapper is a generic key-value container.
type Mapper[K KeyInterface, V any] interface {
	Set(K, V)
	Get(K) (v V, ok bool)
	Reset()
	Len() int
	Delete(K)
	Visit(func(K, V) bool)
}
