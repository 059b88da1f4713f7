package compiler

import (
	"errors"
	"strconv"
)

// ============================================================================
// ERROR DEFINITIONS
// ============================================================================
//
// Every failure the compiler reports is a *BuildError wrapping one of the
// sentinels below, so callers can branch with errors.Is. All of them are
// fatal and are reported before any source is written.

var (
	// ErrEmptyVocabulary indicates a vocabulary with no atoms.
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrEmptyAtom indicates a zero-length atom.
	ErrEmptyAtom = errors.New("empty atom")

	// ErrDuplicateAtom indicates the same text declared twice.
	ErrDuplicateAtom = errors.New("duplicate atom")

	// ErrTooManyAtoms indicates a vocabulary beyond constants.MaxAtoms.
	ErrTooManyAtoms = errors.New("too many atoms")

	// ErrAtomTooLong indicates an atom beyond constants.MaxAtomLen bytes.
	ErrAtomTooLong = errors.New("atom too long")

	// ErrBadIdent indicates an explicit identifier that is not an exported Go name.
	ErrBadIdent = errors.New("invalid identifier")

	// ErrIdentCollision indicates two atoms, or an atom and a generated
	// declaration, mapping to the same Go identifier.
	ErrIdentCollision = errors.New("identifier collision")

	// ErrBadMapping indicates a malformed typed-map association.
	ErrBadMapping = errors.New("invalid type mapping")

	// ErrBadOption indicates an invalid generator option.
	ErrBadOption = errors.New("invalid option")
)

// BuildError is a compile-time failure, optionally tied to one atom.
type BuildError struct {
	Err    error
	Atom   string
	Detail string
}

func (e *BuildError) Error() string {
	s := "compiler: " + e.Err.Error()
	if e.Atom != "" {
		s += " " + strconv.Quote(e.Atom)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func buildErr(err error, atom, detail string) *BuildError {
	return &BuildError{Err: err, Atom: atom, Detail: detail}
}
