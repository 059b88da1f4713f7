package pairidx

import (
	"strconv"
	"strings"
	"testing"
)

var pairs = []string{
	"BTC-EUR", "ETH-EUR", "ETH-BTC", "BTC-USDC", "ETH-USDC", "ETC-BTC", "ETC-EUR", "BTC-USD", "BCH-BTC",
	"BCH-USD", "BTC-GBP", "ETH-USD", "LTC-BTC", "LTC-EUR", "LTC-USD", "BCH-EUR", "ETC-USD", "ZRX-USD",
	"ZRX-BTC", "ZRX-EUR", "ETC-GBP", "ETH-GBP", "LTC-GBP", "BCH-GBP",
}

func TestXxhMix64Lengths(t *testing.T) {
	seen := map[uint64]int{}
	for n := 0; n <= 40; n++ {
		h := xxhMix64(strings.Repeat("x", n))
		if prev, dup := seen[h]; dup {
			t.Errorf("xxhMix64 collides for lengths %d and %d", prev, n)
		}
		seen[h] = n
	}
	if xxhMix64("BTC-EUR") != xxhMix64(strings.Clone("BTC-EUR")) {
		t.Error("xxhMix64 depends on key address")
	}
}

func TestSameKey(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"a", "a", true},
		{"a", "b", false},
		{"abc", "abd", false},
		{"BTC-EUR", "BTC-EUR", true},
		{"BTC-EUR", "BTC-EUX", false},
		{"BTC-USDC", "BTC-USDC", true},
		{"BTC-USDC", "XTC-USDC", false},
		{strings.Repeat("y", 15), strings.Repeat("y", 15), true},
		{strings.Repeat("y", 15), strings.Repeat("y", 14) + "z", false},
		{strings.Repeat("w", 40), strings.Repeat("w", 40), true},
	}
	for _, tt := range tests {
		if got := sameKey(tt.a, tt.b); got != tt.want {
			t.Errorf("sameKey(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIndexBasic(t *testing.T) {
	x := New(len(pairs))
	if x.Len() != 0 {
		t.Fatalf("Len() = %d on empty index", x.Len())
	}
	if _, ok := x.Get("BTC-EUR"); ok {
		t.Fatal("Get on empty index reported a hit")
	}

	for i, p := range pairs {
		if !x.Put(p, i) {
			t.Fatalf("Put(%q) reported a duplicate", p)
		}
	}
	if x.Len() != len(pairs) {
		t.Errorf("Len() = %d, want %d", x.Len(), len(pairs))
	}
	for i, p := range pairs {
		if got, ok := x.Get(p); !ok || got != i {
			t.Errorf("Get(%q) = (%d, %v), want (%d, true)", p, got, ok, i)
		}
		if got, ok := x.GetBytes([]byte(p)); !ok || got != i {
			t.Errorf("GetBytes(%q) = (%d, %v)", p, got, ok)
		}
	}
	for _, miss := range []string{"", "BTC-EU", "BTC-EURX", "btc-eur", "XRP-EUR"} {
		if got, ok := x.Get(miss); ok || got != -1 {
			t.Errorf("Get(%q) = (%d, %v), want miss", miss, got, ok)
		}
	}
}

func TestIndexFirstOrdinalWins(t *testing.T) {
	x := New(2)
	x.Put("ETH-EUR", 0)
	if x.Put("ETH-EUR", 1) {
		t.Error("second Put of the same key must report false")
	}
	if got, _ := x.Get("ETH-EUR"); got != 0 {
		t.Errorf("Get = %d, want first ordinal 0", got)
	}
	if x.Len() != 1 {
		t.Errorf("Len() = %d", x.Len())
	}
}

func TestIndexCapacity(t *testing.T) {
	x := New(1)
	x.Put("a", 0)
	defer func() {
		if recover() == nil {
			t.Error("Put past capacity must panic")
		}
	}()
	x.Put("b", 1)
}

func TestIndexLarge(t *testing.T) {
	const n = 1 << 16
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "k" + strings.Repeat("0", i%5) + string(rune('a'+i%26)) + strconv.Itoa(i)
	}
	x := New(n)
	for i, k := range keys {
		x.Put(k, i)
	}
	for i, k := range keys {
		if got, ok := x.Get(k); !ok || got != i {
			t.Fatalf("Get(%q) = (%d, %v), want %d", k, got, ok, i)
		}
	}
}

func TestIndex_ZeroAllocation(t *testing.T) {
	x := New(len(pairs))
	for i, p := range pairs {
		x.Put(p, i)
	}
	in := []byte("LTC-GBP")
	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = x.Get("ZRX-EUR")
		_, _ = x.GetBytes(in)
	})
	if allocs > 0 {
		t.Errorf("Get allocated: %f allocs/op", allocs)
	}
}
