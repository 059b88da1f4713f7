package pairs

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sugawarayuuta/sonnet"
)

func TestQuoteSize(t *testing.T) {
	tests := []struct {
		p    Pair
		want string
	}{
		{BTCEUR, "0.01"},
		{ETHEUR, "0.01"},
		{ETHBTC, "0.00001"},
		{BTCUSDC, "0.01"},
	}
	for _, tt := range tests {
		if got := QuoteSize(tt.p).String(); got != tt.want {
			t.Errorf("QuoteSize(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestPriceOf(t *testing.T) {
	p, err := PriceOf[ETHBTCMarker](decimal.RequireFromString("0.05123"))
	if err != nil {
		t.Fatalf("PriceOf: %v", err)
	}
	if p.Ticks() != 5123 || p.String() != "0.05123" {
		t.Errorf("ETH-BTC price = %d ticks, %q", p.Ticks(), p.String())
	}

	q, err := PriceOf[BTCEURMarker](decimal.RequireFromString("60000.1"))
	if err != nil {
		t.Fatalf("PriceOf: %v", err)
	}
	if q.Ticks() != 6_000_010 || q.String() != "60000.10" {
		t.Errorf("BTC-EUR price = %d ticks, %q", q.Ticks(), q.String())
	}
	if !q.Decimal().Equal(decimal.RequireFromString("60000.10")) {
		t.Errorf("Decimal() = %s", q.Decimal())
	}

	if _, err := PriceOf[BTCEURMarker](decimal.RequireFromString("60000.015")); !errors.Is(err, ErrOffTick) {
		t.Errorf("off-tick price: err = %v", err)
	}
	if _, err := PriceOf[ETHBTCMarker](decimal.RequireFromString("0.050001")); !errors.Is(err, ErrOffTick) {
		t.Errorf("off-tick price: err = %v", err)
	}
}

func TestPriceInPrices(t *testing.T) {
	var book Prices
	p, _ := PriceOf[ETHBTCMarker](decimal.RequireFromString("0.06"))
	PricesOf[ETHBTCMarker](&book).Insert(p)

	got, ok := book.ETHBTC().Get()
	if !ok || got.String() != "0.06000" {
		t.Errorf("ETHBTC() = (%v, %v)", got, ok)
	}
}

func TestJSON(t *testing.T) {
	type order struct {
		Pair  Pair   `json:"pair"`
		Legs  []Pair `json:"legs"`
		Ticks int64  `json:"ticks"`
	}
	in := order{Pair: ETHBTC, Legs: []Pair{BTCEUR, BTCUSDC}, Ticks: 5123}

	b, err := sonnet.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	const want = `{"pair":"ETH-BTC","legs":["BTC-EUR","BTC-USDC"],"ticks":5123}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	var out order
	if err := sonnet.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Pair != in.Pair || len(out.Legs) != 2 || out.Legs[1] != BTCUSDC {
		t.Errorf("Unmarshal = %+v", out)
	}

	if err := sonnet.Unmarshal([]byte(`{"pair":"SOL-EUR"}`), &out); err == nil {
		t.Error("unknown pair decoded without error")
	}
}
