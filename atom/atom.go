// ============================================================================
// ATOM: RUN-TIME SUPPORT FOR GENERATED ATOM PACKAGES
// ============================================================================
//
// Code emitted by the atom compiler imports this package for the pieces that
// do not depend on the vocabulary: the uniform parse failure, the ordinal
// range error, the optional-value slot and the dense ordinal-indexed table
// behind every generated map.
//
// Nothing in here allocates on the keyed paths, hashes, or locks. Containers
// are plain values owned by the caller; concurrent use needs external
// synchronization.

package atom

import (
	"errors"

	"staticatom/utils"
)

// ============================================================================
// ERROR DEFINITIONS
// ============================================================================

var (
	// ErrNoMatch is the single outcome of a failed recognition. It never says
	// which byte diverged.
	ErrNoMatch = errors.New("atom: not a recognized atom")

	// ErrOrdinalRange matches every *OrdinalRangeError under errors.Is.
	ErrOrdinalRange = errors.New("atom: ordinal out of range")
)

// OrdinalRangeError reports an ordinal outside [0, Count) for atom type Type.
type OrdinalRangeError struct {
	Type    string
	Ordinal int
	Count   int
}

func (e *OrdinalRangeError) Error() string {
	return "atom: ordinal " + utils.Itoa(e.Ordinal) + " out of range for " +
		e.Type + " (" + utils.Itoa(e.Count) + " atoms)"
}

// Is makes errors.Is(err, ErrOrdinalRange) hold.
func (e *OrdinalRangeError) Is(target error) bool {
	return target == ErrOrdinalRange
}

// CheckOrdinal returns nil when 0 ≤ n < count, else an *OrdinalRangeError.
//
//go:inline
func CheckOrdinal(typ string, n, count int) error {
	if n < 0 || n >= count {
		return &OrdinalRangeError{Type: typ, Ordinal: n, Count: count}
	}
	return nil
}

// Invalid renders a value outside its vocabulary as "Type(n)".
func Invalid(typ string, n int) string {
	return typ + "(" + utils.Itoa(n) + ")"
}

// ============================================================================
// INPUT HELPERS
// ============================================================================

// Bytes views s as a read-only byte slice so string input can be recognized
// without a copy.
//
//go:nosplit
//go:inline
func Bytes(s string) []byte {
	return utils.S2b(s)
}
