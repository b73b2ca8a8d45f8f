package domain

// Lookup is the result of fetching an entity by id: either Found with a value or Missing.
// Callers must go through Get, so a missing entity can never be mistaken for a zero value.
type Lookup[T any] struct {
	value T
	found bool
}

// Found wraps a fetched entity.
func Found[T any](v T) Lookup[T] {
	return Lookup[T]{value: v, found: true}
}

// Missing reports that no entity exists for the requested id.
func Missing[T any]() Lookup[T] {
	return Lookup[T]{}
}

// Get returns the entity and whether it was found.
func (l Lookup[T]) Get() (T, bool) {
	return l.value, l.found
}

// IsFound reports whether the lookup resolved to an entity.
func (l Lookup[T]) IsFound() bool {
	return l.found
}
