// ============================================================================
// EXPECT: WORD-WIDTH LITERAL COMPARISONS FOR GENERATED RECOGNIZERS
// ============================================================================
//
// A recognizer produced by the atom compiler verifies the bytes of a known
// literal against its input. Comparing one byte per branch is the naive way;
// this package compares up to eight bytes per branch by loading the input as
// a word and testing it against a constant packed at generation time.
//
// Architecture overview:
//   - Order fixes how literal bytes are packed into words. It is a generation
//     parameter, never the host's native order, so generated code is portable.
//   - Plan splits an arbitrary literal length into native widths, widest first
//     (7 → 4+2+1).
//   - Byte / LE* / BE* are the primitive comparisons emitted into generated
//     code at constant offsets.
//   - Order.Expect is the cursor form used by interpreters and tests.
//
// Safety model:
//   - Callers guarantee len(s) ≥ width. The generated recognizer checks the
//     total input length once up front, so no comparison here re-checks it.
//     Violating the precondition panics on the bounds check.

package expect

import (
	"errors"
	"strings"

	"staticatom/constants"
	"staticatom/utils"
)

// ============================================================================
// BYTE ORDER
// ============================================================================

// Order is the byte order literal words are packed in.
type Order uint8

const (
	// LittleEndian packs the first literal byte into the least significant bits.
	LittleEndian Order = iota
	// BigEndian packs the first literal byte into the most significant bits.
	BigEndian
)

// ErrUnknownOrder is returned by ParseOrder for anything but little/big.
var ErrUnknownOrder = errors.New("expect: unknown byte order")

// ParseOrder accepts "little"/"le" and "big"/"be", case-insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "little", "le", "little-endian":
		return LittleEndian, nil
	case "big", "be", "big-endian":
		return BigEndian, nil
	}
	return 0, ErrUnknownOrder
}

// String returns "little" or "big".
func (o Order) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// Prefix returns the primitive name prefix for this order ("LE" or "BE").
func (o Order) Prefix() string {
	if o == BigEndian {
		return "BE"
	}
	return "LE"
}

// ============================================================================
// WIDTH PLANNING
// ============================================================================

// Plan splits a literal of k bytes into comparison widths, widest first.
// Widths without a native comparison (3, 5, 6, 7) become one maximal native
// block followed by the plan of the remainder. Plan(0) is empty.
func Plan(k int) []int {
	if k <= 0 {
		return nil
	}
	plan := make([]int, 0, k/constants.MaxWordWidth+3)
	for _, w := range constants.WordWidths {
		for k >= w {
			plan = append(plan, w)
			k -= w
		}
	}
	return plan
}

// Word packs a literal of 1, 2, 4 or 8 bytes into the word the matching
// loader produces for that input. It panics on any other length.
func (o Order) Word(lit []byte) uint64 {
	switch len(lit) {
	case 1:
		return uint64(lit[0])
	case 2:
		if o == BigEndian {
			return uint64(utils.LoadBE16(lit))
		}
		return uint64(utils.LoadLE16(lit))
	case 4:
		if o == BigEndian {
			return uint64(utils.LoadBE32(lit))
		}
		return uint64(utils.LoadLE32(lit))
	case 8:
		if o == BigEndian {
			return utils.LoadBE64(lit)
		}
		return utils.LoadLE64(lit)
	}
	panic("expect: word width must be 1, 2, 4 or 8, got " + utils.Itoa(len(lit)))
}

// ============================================================================
// PRIMITIVE COMPARISONS (EMITTED INTO GENERATED CODE)
// ============================================================================

// Byte reports whether s[0] == c.
//
//go:nosplit
//go:inline
func Byte(s []byte, c byte) bool {
	return s[0] == c
}

// LE2 reports whether the first 2 bytes of s, read little-endian, equal w.
//
//go:nosplit
//go:inline
func LE2(s []byte, w uint16) bool {
	return utils.LoadLE16(s) == w
}

// LE4 reports whether the first 4 bytes of s, read little-endian, equal w.
//
//go:nosplit
//go:inline
func LE4(s []byte, w uint32) bool {
	return utils.LoadLE32(s) == w
}

// LE8 reports whether the first 8 bytes of s, read little-endian, equal w.
//
//go:nosplit
//go:inline
func LE8(s []byte, w uint64) bool {
	return utils.LoadLE64(s) == w
}

// BE2 reports whether the first 2 bytes of s, read big-endian, equal w.
//
//go:nosplit
//go:inline
func BE2(s []byte, w uint16) bool {
	return utils.LoadBE16(s) == w
}

// BE4 reports whether the first 4 bytes of s, read big-endian, equal w.
//
//go:nosplit
//go:inline
func BE4(s []byte, w uint32) bool {
	return utils.LoadBE32(s) == w
}

// BE8 reports whether the first 8 bytes of s, read big-endian, equal w.
//
//go:nosplit
//go:inline
func BE8(s []byte, w uint64) bool {
	return utils.LoadBE64(s) == w
}

// ============================================================================
// CURSOR FORM
// ============================================================================

// Block compares one native-width word of s against a packed literal word.
// Width must be 1, 2, 4 or 8.
func (o Order) Block(s []byte, width int, word uint64) bool {
	switch width {
	case 1:
		return Byte(s, byte(word))
	case 2:
		if o == BigEndian {
			return BE2(s, uint16(word))
		}
		return LE2(s, uint16(word))
	case 4:
		if o == BigEndian {
			return BE4(s, uint32(word))
		}
		return LE4(s, uint32(word))
	case 8:
		if o == BigEndian {
			return BE8(s, word)
		}
		return LE8(s, word)
	}
	return false
}

// Expect verifies that s starts with lit, comparing it in Plan(len(lit))
// blocks. On success it returns the input advanced past lit; on failure it
// returns s unchanged and false. Precondition: len(s) ≥ len(lit).
func (o Order) Expect(s []byte, lit []byte) ([]byte, bool) {
	off := 0
	for _, w := range constants.WordWidths {
		for len(lit)-off >= w {
			if !o.Block(s[off:], w, o.Word(lit[off:off+w])) {
				return s, false
			}
			off += w
		}
	}
	return s[off:], true
}
