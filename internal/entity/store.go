package entity

// Store holds one component kind for every entity, indexed directly by ID.
// It is not safe for concurrent use; the scheduler gives each phase exclusive access.
type Store[T any] struct {
	items   []T
	present []bool
	count   int
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Set attaches or replaces the component for an entity.
func (s *Store[T]) Set(id ID, val T) {
	s.grow(id)
	if !s.present[id] {
		s.present[id] = true
		s.count++
	}
	s.items[id] = val
}

// Get returns a pointer to the entity's component for in-place mutation.
// The pointer is invalidated by the next Set on a new ID.
func (s *Store[T]) Get(id ID) (*T, bool) {
	if !s.Has(id) {
		return nil, false
	}
	return &s.items[id], true
}

// Has returns true if the entity carries this component.
func (s *Store[T]) Has(id ID) bool {
	return int(id) < len(s.present) && s.present[id]
}

// Remove detaches the component from an entity. Removing a missing component is a no-op.
func (s *Store[T]) Remove(id ID) {
	if !s.Has(id) {
		return
	}
	var zero T
	s.items[id] = zero
	s.present[id] = false
	s.count--
}

// Each calls fn for every entity carrying the component, in ascending ID order.
func (s *Store[T]) Each(fn func(id ID, val *T)) {
	for i := range s.present {
		if s.present[i] {
			fn(ID(i), &s.items[i])
		}
	}
}

// IDs returns the entities carrying the component, in ascending order.
func (s *Store[T]) IDs() []ID {
	ids := make([]ID, 0, s.count)
	for i := range s.present {
		if s.present[i] {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// Len returns the number of entities carrying the component.
func (s *Store[T]) Len() int {
	return s.count
}

func (s *Store[T]) grow(id ID) {
	if int(id) < len(s.items) {
		return
	}
	n := int(id) + 1
	if n < 2*len(s.items) {
		n = 2 * len(s.items)
	}
	items := make([]T, n)
	copy(items, s.items)
	present := make([]bool, n)
	copy(present, s.present)
	s.items = items
	s.present = present
}
