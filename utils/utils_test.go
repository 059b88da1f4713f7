package utils

import (
	"encoding/binary"
	"math"
	"strconv"
	"testing"
	"unsafe"
)

// ============================================================================
// ZERO-ALLOCATION TYPE CONVERSION TESTS
// ============================================================================

func TestB2s(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "Empty slice", input: []byte{}, expected: ""},
		{name: "Nil slice", input: nil, expected: ""},
		{name: "Single character", input: []byte{'a'}, expected: "a"},
		{name: "Pair symbol", input: []byte("BTC-EUR"), expected: "BTC-EUR"},
		{name: "Binary data", input: []byte{0x00, 0xFF}, expected: "\x00\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := B2s(tt.input)
			if result != tt.expected {
				t.Errorf("B2s() = %q, expected %q", result, tt.expected)
			}
			if len(tt.input) > 0 && unsafe.Pointer(&tt.input[0]) != unsafe.Pointer(unsafe.StringData(result)) {
				t.Error("B2s() should share underlying data with input slice")
			}
		})
	}
}

func TestS2b(t *testing.T) {
	if got := S2b(""); got != nil {
		t.Errorf("S2b(\"\") = %v, expected nil", got)
	}

	s := "ETH-BTC"
	b := S2b(s)
	if string(b) != s {
		t.Errorf("S2b() = %q, expected %q", b, s)
	}
	if unsafe.Pointer(&b[0]) != unsafe.Pointer(unsafe.StringData(s)) {
		t.Error("S2b() should share underlying data with input string")
	}
}

func TestConversions_ZeroAllocation(t *testing.T) {
	b := []byte("test string for allocation testing")
	s := "test string for allocation testing"

	allocs := testing.AllocsPerRun(1000, func() {
		_ = B2s(b)
		_ = S2b(s)
	})
	if allocs > 0 {
		t.Errorf("conversions allocated memory: %f allocs/op", allocs)
	}
}

// ============================================================================
// FIXED-ORDER LOADER TESTS
// ============================================================================

func TestLoaders_MatchEncodingBinary(t *testing.T) {
	inputs := [][]byte{
		[]byte("BTC-USDC"),
		[]byte("ETH-EUR\x00"),
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8},
	}

	for _, in := range inputs {
		t.Run(strconv.Quote(string(in)), func(t *testing.T) {
			if got, want := LoadLE16(in), binary.LittleEndian.Uint16(in); got != want {
				t.Errorf("LoadLE16 = %#x, want %#x", got, want)
			}
			if got, want := LoadLE32(in), binary.LittleEndian.Uint32(in); got != want {
				t.Errorf("LoadLE32 = %#x, want %#x", got, want)
			}
			if got, want := LoadLE64(in), binary.LittleEndian.Uint64(in); got != want {
				t.Errorf("LoadLE64 = %#x, want %#x", got, want)
			}
			if got, want := LoadBE16(in), binary.BigEndian.Uint16(in); got != want {
				t.Errorf("LoadBE16 = %#x, want %#x", got, want)
			}
			if got, want := LoadBE32(in), binary.BigEndian.Uint32(in); got != want {
				t.Errorf("LoadBE32 = %#x, want %#x", got, want)
			}
			if got, want := LoadBE64(in), binary.BigEndian.Uint64(in); got != want {
				t.Errorf("LoadBE64 = %#x, want %#x", got, want)
			}
		})
	}
}

func TestLoaders_ReadOnlyPrefix(t *testing.T) {
	// Trailing bytes past the word must not influence the result
	a := []byte("TC-Ezzzz")
	b := []byte("TC-E")
	if LoadLE32(a) != LoadLE32(b) {
		t.Error("LoadLE32 read past its 4-byte window")
	}
	if LoadBE16(a) != LoadBE16(b) {
		t.Error("LoadBE16 read past its 2-byte window")
	}
}

func TestLoaders_PanicOnShortInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadLE64 on a 7-byte slice should panic")
		}
	}()
	_ = LoadLE64(make([]byte, 7))
}

// ============================================================================
// FORMATTING TESTS
// ============================================================================

func TestItoa(t *testing.T) {
	tests := []int{0, 1, 9, 10, 255, 65535, -1, -42, math.MaxInt64, math.MinInt64}
	for _, n := range tests {
		if got, want := Itoa(n), strconv.Itoa(n); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", n, got, want)
		}
	}
}
