package atom

// Slot is an optional value stored inline. The zero Slot is empty.
type Slot[V any] struct {
	val V
	set bool
}

// Get returns the value and whether the slot is populated.
func (s *Slot[V]) Get() (V, bool) {
	return s.val, s.set
}

// Ptr returns a pointer to the stored value, or nil if the slot is empty.
// The pointer stays valid as long as the slot's owner does.
func (s *Slot[V]) Ptr() *V {
	if !s.set {
		return nil
	}
	return &s.val
}

// IsSet reports whether the slot is populated.
func (s *Slot[V]) IsSet() bool {
	return s.set
}

// Insert stores v and returns the previous value, if any.
func (s *Slot[V]) Insert(v V) (V, bool) {
	prev, had := s.val, s.set
	s.val, s.set = v, true
	return prev, had
}

// Remove empties the slot and returns what it held, if anything.
func (s *Slot[V]) Remove() (V, bool) {
	prev, had := s.val, s.set
	var zero V
	s.val, s.set = zero, false
	return prev, had
}

// GetOrInsert stores v if the slot is empty and returns a pointer to the
// stored value either way.
func (s *Slot[V]) GetOrInsert(v V) *V {
	if !s.set {
		s.val, s.set = v, true
	}
	return &s.val
}

// GetOrInsertWith is GetOrInsert with a lazily computed value; f runs only
// when the slot is empty.
func (s *Slot[V]) GetOrInsertWith(f func() V) *V {
	if !s.set {
		s.val, s.set = f(), true
	}
	return &s.val
}
