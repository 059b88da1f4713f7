package expect

import (
	"bytes"
	"reflect"
	"testing"
)

// ============================================================================
// ORDER PARSING
// ============================================================================

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{in: "little", want: LittleEndian},
		{in: "LE", want: LittleEndian},
		{in: "little-endian", want: LittleEndian},
		{in: "big", want: BigEndian},
		{in: "Be", want: BigEndian},
		{in: "native", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		if tt.wantErr {
			if err != ErrUnknownOrder {
				t.Errorf("ParseOrder(%q) err = %v, want ErrUnknownOrder", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if back, _ := ParseOrder(got.String()); back != got {
			t.Errorf("String() of %v does not round trip", got)
		}
	}
}

// ============================================================================
// WIDTH PLANNING
// ============================================================================

func TestPlan(t *testing.T) {
	tests := []struct {
		k    int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{2, []int{2}},
		{3, []int{2, 1}},
		{4, []int{4}},
		{5, []int{4, 1}},
		{6, []int{4, 2}},
		{7, []int{4, 2, 1}},
		{8, []int{8}},
		{11, []int{8, 2, 1}},
		{16, []int{8, 8}},
		{23, []int{8, 8, 4, 2, 1}},
	}
	for _, tt := range tests {
		got := Plan(tt.k)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Plan(%d) = %v, want %v", tt.k, got, tt.want)
		}
		sum := 0
		for _, w := range got {
			sum += w
		}
		if sum != tt.k {
			t.Errorf("Plan(%d) covers %d bytes", tt.k, sum)
		}
	}
}

func TestWord(t *testing.T) {
	tests := []struct {
		lit    string
		order  Order
		expect uint64
	}{
		{"-", LittleEndian, '-'},
		{"-", BigEndian, '-'},
		{"TH", LittleEndian, 0x4854},
		{"TH", BigEndian, 0x5448},
		{"TC-E", LittleEndian, 0x452d4354},
		{"TC-E", BigEndian, 0x54432d45},
		{"BTC-USDC", LittleEndian, 0x434453552d435442},
		{"BTC-USDC", BigEndian, 0x4254432d55534443},
	}
	for _, tt := range tests {
		if got := tt.order.Word([]byte(tt.lit)); got != tt.expect {
			t.Errorf("%v.Word(%q) = %#x, want %#x", tt.order, tt.lit, got, tt.expect)
		}
	}
}

func TestWordPanicsOnCompositeWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Word on a 3-byte literal should panic")
		}
	}()
	LittleEndian.Word([]byte("abc"))
}

// ============================================================================
// PRIMITIVE COMPARISONS
// ============================================================================

func TestPrimitives(t *testing.T) {
	in := []byte("BTC-USDC")

	if !Byte(in, 'B') || Byte(in, 'b') {
		t.Error("Byte mismatch")
	}
	if !LE2(in, 0x5442) || LE2(in, 0x4254) {
		t.Error("LE2 mismatch")
	}
	if !BE2(in, 0x4254) || BE2(in, 0x5442) {
		t.Error("BE2 mismatch")
	}
	if !LE4(in[1:], uint32(LittleEndian.Word([]byte("TC-U")))) || LE4(in[1:], 0x452d4354) {
		t.Error("LE4 mismatch")
	}
	if !BE4(in[4:], uint32(BigEndian.Word([]byte("USDC")))) {
		t.Error("BE4 mismatch")
	}
	if !LE8(in, 0x434453552d435442) || !BE8(in, 0x4254432d55534443) {
		t.Error("8-byte comparison mismatch")
	}
	if LE8(in, 0x434453552d435443) {
		t.Error("LE8 accepted a one-bit difference")
	}
}

func TestBlockRejectsUnknownWidth(t *testing.T) {
	if LittleEndian.Block([]byte("abc"), 3, 0) {
		t.Error("Block with width 3 must fail")
	}
}

// ============================================================================
// CURSOR FORM
// ============================================================================

func TestExpect(t *testing.T) {
	for _, order := range []Order{LittleEndian, BigEndian} {
		for k := 1; k <= 8; k++ {
			input := []byte("ABCDEFGHIJ")
			lit := input[:k:k]

			rest, ok := order.Expect(input, lit)
			if !ok {
				t.Fatalf("%v: Expect of exact %d-byte prefix failed", order, k)
			}
			if !bytes.Equal(rest, input[k:]) {
				t.Errorf("%v: cursor advanced to %q, want %q", order, rest, input[k:])
			}

			// Every single-byte mutation must fail and leave the cursor alone
			for i := 0; i < k; i++ {
				bad := append([]byte(nil), lit...)
				bad[i] ^= 0x20
				rest, ok := order.Expect(input, bad)
				if ok {
					t.Errorf("%v: Expect(%q) accepted mutation at %d", order, bad, i)
				}
				if len(rest) != len(input) {
					t.Errorf("%v: failed Expect moved the cursor", order)
				}
			}
		}
	}
}

func TestExpectEmptyLiteral(t *testing.T) {
	rest, ok := LittleEndian.Expect([]byte("x"), nil)
	if !ok || string(rest) != "x" {
		t.Errorf("empty literal: got %q, %v", rest, ok)
	}
}

func TestExpect_ZeroAllocation(t *testing.T) {
	input := []byte("ETH-USDC")
	lit := []byte("ETH-USD")
	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = LittleEndian.Expect(input, lit)
	})
	if allocs > 0 {
		t.Errorf("Expect allocated: %f allocs/op", allocs)
	}
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkExpect7(b *testing.B) {
	input := []byte("BTC-EUR")
	lit := []byte("BTC-EUR")
	for i := 0; i < b.N; i++ {
		_, _ = LittleEndian.Expect(input, lit)
	}
}

func BenchmarkLE4(b *testing.B) {
	input := []byte("TC-E")
	w := uint32(LittleEndian.Word(input))
	for i := 0; i < b.N; i++ {
		_ = LE4(input, w)
	}
}
