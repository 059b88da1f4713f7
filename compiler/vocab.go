package compiler

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"staticatom/atom"
	"staticatom/constants"
	"staticatom/pairidx"
	"staticatom/utils"
)

// ============================================================================
// ATOM IDENTITY
// ============================================================================

// Entry is one declared atom: its text and, optionally, the Go identifier the
// generated constant should use.
type Entry struct {
	Text  string
	Ident string
}

// Texts declares one entry per text, with derived identifiers.
func Texts(texts ...string) []Entry {
	entries := make([]Entry, len(texts))
	for i, s := range texts {
		entries[i] = Entry{Text: s}
	}
	return entries
}

// Atom is a validated vocabulary entry. Ordinals are dense and follow
// declaration order.
type Atom struct {
	Text    string
	Ordinal int
	Ident   string
}

// LengthClass groups the atoms of one byte length, in declaration order.
type LengthClass struct {
	Len   int
	Atoms []Atom
}

// Vocabulary is the ordered, validated atom set the compiler works from.
type Vocabulary struct {
	atoms  []Atom
	byText *pairidx.Index
}

// NewVocabulary validates entries and assigns ordinals 0..N-1 in order.
func NewVocabulary(entries []Entry) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, buildErr(ErrEmptyVocabulary, "", "")
	}
	if len(entries) > constants.MaxAtoms {
		return nil, buildErr(ErrTooManyAtoms, "", utils.Itoa(len(entries))+" > "+utils.Itoa(constants.MaxAtoms))
	}

	v := &Vocabulary{
		atoms:  make([]Atom, 0, len(entries)),
		byText: pairidx.New(len(entries)),
	}
	byIdent := make(map[string]int, len(entries))

	// Texts and explicit identifiers first: an explicit name always wins
	// over a derived one.
	for i, e := range entries {
		switch {
		case len(e.Text) == 0:
			return nil, buildErr(ErrEmptyAtom, "", "at ordinal "+utils.Itoa(i))
		case len(e.Text) > constants.MaxAtomLen:
			return nil, buildErr(ErrAtomTooLong, e.Text, utils.Itoa(len(e.Text))+" bytes")
		}
		if prev, dup := v.byText.Get(e.Text); dup {
			return nil, buildErr(ErrDuplicateAtom, e.Text, "ordinals "+utils.Itoa(prev)+" and "+utils.Itoa(i))
		}
		v.byText.Put(e.Text, i)

		if e.Ident == "" {
			continue
		}
		if !token.IsIdentifier(e.Ident) || !token.IsExported(e.Ident) {
			return nil, buildErr(ErrBadIdent, e.Text, strings.TrimSpace(e.Ident))
		}
		if prev, dup := byIdent[e.Ident]; dup {
			return nil, collision(e.Text, e.Ident, entries[prev].Text)
		}
		byIdent[e.Ident] = i
	}

	for i, e := range entries {
		ident := e.Ident
		if ident == "" {
			ident = DeriveIdent(e.Text)
			if _, taken := byIdent[ident]; taken || ident == "" {
				ident = ordinalIdent(ident, i)
				if prev, dup := byIdent[ident]; dup {
					return nil, collision(e.Text, ident, entries[prev].Text)
				}
			}
			byIdent[ident] = i
		}
		v.atoms = append(v.atoms, Atom{Text: e.Text, Ordinal: i, Ident: ident})
	}
	return v, nil
}

func collision(text, ident, owner string) error {
	return buildErr(ErrIdentCollision, text, ident+" already names "+strconv.Quote(owner))
}

// Len returns the number of atoms.
func (v *Vocabulary) Len() int { return len(v.atoms) }

// Atoms returns the atoms in ordinal order. The slice must not be modified.
func (v *Vocabulary) Atoms() []Atom { return v.atoms }

// Ordinal returns the ordinal of text.
func (v *Vocabulary) Ordinal(text string) (int, bool) {
	return v.byText.Get(text)
}

// Atom returns the atom with ordinal n, or an *atom.OrdinalRangeError.
func (v *Vocabulary) Atom(n int) (Atom, error) {
	if err := atom.CheckOrdinal("vocabulary", n, len(v.atoms)); err != nil {
		return Atom{}, err
	}
	return v.atoms[n], nil
}

// Classes partitions the atoms by byte length, shortest class first.
func (v *Vocabulary) Classes() []LengthClass {
	var byLen [constants.MaxAtomLen + 1][]Atom
	for _, a := range v.atoms {
		byLen[len(a.Text)] = append(byLen[len(a.Text)], a)
	}
	var classes []LengthClass
	for n, atoms := range byLen {
		if len(atoms) > 0 {
			classes = append(classes, LengthClass{Len: n, Atoms: atoms})
		}
	}
	return classes
}

// ============================================================================
// IDENTIFIER DERIVATION
// ============================================================================

// DeriveIdent turns atom text into an exported Go identifier: every run of
// letters and digits is kept with its first letter upper-cased, separators
// are dropped ("BTC-EUR" → "BTCEUR", "eth/usd" → "EthUsd"). A result that
// does not start with an upper-case letter is prefixed with "A". Text with
// no letters or digits derives "".
func DeriveIdent(text string) string {
	var b strings.Builder
	startOfRun := true
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfRun = true
			continue
		}
		if startOfRun {
			r = unicode.ToUpper(r)
			startOfRun = false
		}
		b.WriteRune(r)
	}
	id := b.String()
	if id != "" && !token.IsExported(id) {
		id = "A" + id
	}
	return id
}

// ordinalIdent names an atom whose derived identifier is empty or taken.
// Derived identifiers never contain '_', so the result cannot clash with
// another derived or ordinal name.
func ordinalIdent(derived string, ordinal int) string {
	if derived == "" {
		derived = "A"
	}
	return derived + "_" + utils.Itoa(ordinal)
}
