package utils

import "unsafe"

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// S2b views a string as a []byte **without** allocation.
// ⚠️ The returned slice must never be written to.
//
//go:nosplit
//go:inline
func S2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

///////////////////////////////////////////////////////////////////////////////
// Fixed-Order Loaders — Portable Word Reads
///////////////////////////////////////////////////////////////////////////////
//
// Every loader spells out its byte order instead of reinterpreting memory in
// the host's native order. The compiler folds each pattern into a single
// (possibly byte-swapped) load on amd64 and arm64.

// LoadLE16 reads a little-endian 16-bit word.
//
//go:nosplit
//go:inline
func LoadLE16(b []byte) uint16 {
	_ = b[1] // bounds check hint
	return uint16(b[0]) | uint16(b[1])<<8
}

// LoadLE32 reads a little-endian 32-bit word.
//
//go:nosplit
//go:inline
func LoadLE32(b []byte) uint32 {
	_ = b[3] // bounds check hint
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// LoadLE64 reads a little-endian 64-bit word.
//
//go:nosplit
//go:inline
func LoadLE64(b []byte) uint64 {
	_ = b[7] // bounds check hint
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40 |
		uint64(b[6])<<48 | uint64(b[7])<<56
}

// LoadBE16 reads a big-endian 16-bit word.
//
//go:nosplit
//go:inline
func LoadBE16(b []byte) uint16 {
	_ = b[1] // bounds check hint
	return uint16(b[0])<<8 | uint16(b[1])
}

// LoadBE32 reads a big-endian 32-bit word.
//
//go:nosplit
//go:inline
func LoadBE32(b []byte) uint32 {
	_ = b[3] // bounds check hint
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// LoadBE64 performs a manual big-endian 64-bit read, avoiding dependency on binary.BigEndian.
//
//go:nosplit
//go:inline
func LoadBE64(b []byte) uint64 {
	_ = b[7] // bounds check hint
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 |
		uint64(b[3])<<32 | uint64(b[4])<<24 | uint64(b[5])<<16 |
		uint64(b[6])<<8 | uint64(b[7])
}

///////////////////////////////////////////////////////////////////////////////
// Formatting
///////////////////////////////////////////////////////////////////////////////

// Itoa formats a non-negative int without going through strconv's generic path.
// Negative values are rendered with a leading '-'.
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
