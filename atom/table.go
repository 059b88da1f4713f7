package atom

import "iter"

// Ordinal is the underlying shape of every generated atom type.
type Ordinal interface {
	~uint8 | ~uint16
}

// Table is a dense partial map from atom K to V: slot i holds the value of
// the atom with ordinal i. Generated map types own a fixed-size array of
// slots and hand a Table view of it to these methods, so no operation
// allocates.
type Table[K Ordinal, V any] []Slot[V]

// Get returns the value stored for k.
//
//go:inline
func (t Table[K, V]) Get(k K) (V, bool) {
	return t[k].Get()
}

// Ptr returns a pointer to the value stored for k, or nil.
//
//go:inline
func (t Table[K, V]) Ptr(k K) *V {
	return t[k].Ptr()
}

// Contains reports whether k has a value.
//
//go:inline
func (t Table[K, V]) Contains(k K) bool {
	return t[k].set
}

// Insert stores v for k and returns the previous value, if any.
//
//go:inline
func (t Table[K, V]) Insert(k K, v V) (V, bool) {
	return t[k].Insert(v)
}

// Remove deletes k and returns the value it held, if any.
//
//go:inline
func (t Table[K, V]) Remove(k K) (V, bool) {
	return t[k].Remove()
}

// GetOrInsert stores v for k unless present and returns the stored value.
func (t Table[K, V]) GetOrInsert(k K, v V) *V {
	return t[k].GetOrInsert(v)
}

// GetOrInsertWith is GetOrInsert with a lazily computed value.
func (t Table[K, V]) GetOrInsertWith(k K, f func() V) *V {
	return t[k].GetOrInsertWith(f)
}

// Len counts populated slots. O(N).
func (t Table[K, V]) Len() int {
	n := 0
	for i := range t {
		if t[i].set {
			n++
		}
	}
	return n
}

// Clear empties every slot.
func (t Table[K, V]) Clear() {
	clear(t)
}

// ============================================================================
// ITERATION (ORDINAL ORDER, POPULATED SLOTS ONLY)
// ============================================================================

// All yields every populated (atom, value) pair in ordinal order.
func (t Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t {
			if t[i].set && !yield(K(i), t[i].val) {
				return
			}
		}
	}
}

// AllPtr yields every populated atom with a pointer to its value, so values
// can be updated in place during iteration.
func (t Table[K, V]) AllPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range t {
			if t[i].set && !yield(K(i), &t[i].val) {
				return
			}
		}
	}
}

// Keys yields every populated atom in ordinal order.
func (t Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range t {
			if t[i].set && !yield(K(i)) {
				return
			}
		}
	}
}

// Values yields every stored value in ordinal order of its atom.
func (t Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range t {
			if t[i].set && !yield(t[i].val) {
				return
			}
		}
	}
}

// Fill inserts every pair of seq into t, later pairs overwriting earlier ones.
func (t Table[K, V]) Fill(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		t[k].Insert(v)
	}
}
