// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: index.go — Fixed-capacity string → ordinal hash index
//
// Purpose:
//   - Maps atom text to its ordinal for the compiler's vocabulary, where the
//     set is only known at run time of the generator.
//   - Serves as the general-purpose hashing baseline generated recognizers
//     are benchmarked against.
//
// Notes:
//   - Linear probing over a power-of-two slot array sized to 4× capacity,
//     so probe runs stay short and always end at an empty slot. No deletion,
//     no growth.
//   - Keys are compared word-wise (8/4/2/1) after a 16-bit tag match.
//   - Keys are referenced, not copied; callers keep them alive.
//
// ⚠️ Not safe for concurrent writers.
// ─────────────────────────────────────────────────────────────────────────────

package pairidx

import (
	"math/bits"

	"staticatom/utils"
)

// ───────────────────────────── Hashing ───────────────────────────────────────

const (
	prime64_1 = 0x9E3779B185EBCA87
	prime64_2 = 0xC2B2AE3D27D4EB4F
)

// xxhMix64 is a small xxHash-style mix over the whole key.
//
//go:nosplit
func xxhMix64(k string) uint64 {
	b := utils.S2b(k)
	h := uint64(len(b)) * prime64_1
	for len(b) >= 8 {
		h ^= bits.RotateLeft64(utils.LoadLE64(b)*prime64_2, 31)
		h = bits.RotateLeft64(h, 27) * prime64_1
		b = b[8:]
	}
	if len(b) > 0 {
		var t uint64
		for i := len(b) - 1; i >= 0; i-- {
			t = t<<8 | uint64(b[i])
		}
		h ^= bits.RotateLeft64(t*prime64_2, 11)
		h = bits.RotateLeft64(h, 7) * prime64_1
	}
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_1
	h ^= h >> 32
	return h
}

// sameKey compares two equal-length keys widest word first.
//
//go:nosplit
func sameKey(a, b string) bool {
	x, y := utils.S2b(a), utils.S2b(b)
	for len(x) >= 8 {
		if utils.LoadLE64(x) != utils.LoadLE64(y) {
			return false
		}
		x, y = x[8:], y[8:]
	}
	if len(x) >= 4 {
		if utils.LoadLE32(x) != utils.LoadLE32(y) {
			return false
		}
		x, y = x[4:], y[4:]
	}
	if len(x) >= 2 {
		if utils.LoadLE16(x) != utils.LoadLE16(y) {
			return false
		}
		x, y = x[2:], y[2:]
	}
	return len(x) == 0 || x[0] == y[0]
}

// ───────────────────────────── Layout ────────────────────────────────────────

type slot struct {
	tag  uint16 // upper 16 bits of hash | 1 (0 → empty)
	klen uint16
	ord  uint32
	key  string
}

// Index maps up to a fixed number of strings to ordinals.
type Index struct {
	slots []slot
	mask  uint32
	size  int
	limit int
}

// New returns an index for at most capacity keys.
func New(capacity int) *Index {
	if capacity < 1 {
		capacity = 1
	}
	n := 1 << bits.Len(uint(capacity*4-1))
	return &Index{
		slots: make([]slot, n),
		mask:  uint32(n - 1),
		limit: capacity,
	}
}

// Len returns the number of keys stored.
func (x *Index) Len() int { return x.size }

// Get returns the ordinal stored for k.
func (x *Index) Get(k string) (int, bool) {
	hash := xxhMix64(k)
	tag := uint16(hash>>48) | 1
	klen := uint16(len(k))
	i := uint32(hash) & x.mask

	for {
		s := &x.slots[i]
		if s.tag == 0 {
			return -1, false
		}
		if s.tag == tag && s.klen == klen && sameKey(s.key, k) {
			return int(s.ord), true
		}
		i = (i + 1) & x.mask
	}
}

// GetBytes is Get over a byte slice, without copying it.
func (x *Index) GetBytes(b []byte) (int, bool) {
	return x.Get(utils.B2s(b))
}

// Put stores ord for k. It reports false, storing nothing, if k is already
// present; the first ordinal wins.
func (x *Index) Put(k string, ord int) bool {
	hash := xxhMix64(k)
	tag := uint16(hash>>48) | 1
	klen := uint16(len(k))
	i := uint32(hash) & x.mask

	for {
		s := &x.slots[i]
		if s.tag == 0 {
			if x.size == x.limit {
				panic("pairidx: capacity " + utils.Itoa(x.limit) + " exceeded")
			}
			s.tag, s.klen, s.ord, s.key = tag, klen, uint32(ord), k
			x.size++
			return true
		}
		if s.tag == tag && s.klen == klen && sameKey(s.key, k) {
			return false
		}
		i = (i + 1) & x.mask
	}
}
