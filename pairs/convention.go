package pairs

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ============================================================================
// QUOTE CONVENTIONS
// ============================================================================

// Convention is the per-pair quoting rule every marker implements.
type Convention interface {
	PairMarker
	QuoteSize() decimal.Decimal
}

// ErrOffTick is returned by PriceOf for a price between two ticks.
var ErrOffTick = errors.New("pairs: price is not a multiple of the quote size")

var (
	cent     = decimal.New(1, -2)
	satoshiK = decimal.New(1, -5)
)

// Every marker carries a convention.
var _ = [PairCount]Convention{BTCEURMarker{}, ETHEURMarker{}, ETHBTCMarker{}, BTCUSDCMarker{}}

func (BTCEURMarker) QuoteSize() decimal.Decimal  { return cent }
func (ETHEURMarker) QuoteSize() decimal.Decimal  { return cent }
func (ETHBTCMarker) QuoteSize() decimal.Decimal  { return satoshiK }
func (BTCUSDCMarker) QuoteSize() decimal.Decimal { return cent }

// QuoteSize returns the price increment of p. p must be an atom.
func QuoteSize(p Pair) decimal.Decimal {
	return p.Marker().(Convention).QuoteSize()
}

// ============================================================================
// PRICES
// ============================================================================

// Price is a price of pair M in whole ticks of its quote size. Prices of
// different pairs are different types.
type Price[M PairMarker] struct {
	ticks int64
}

// PriceOf converts d to a Price of M. d must be a multiple of M's quote size.
func PriceOf[M PairMarker](d decimal.Decimal) (Price[M], error) {
	var m M
	q := QuoteSize(m.Atom())
	if !d.Mod(q).IsZero() {
		return Price[M]{}, ErrOffTick
	}
	return Price[M]{ticks: d.Div(q).IntPart()}, nil
}

// Ticks returns the price in quote-size units.
func (p Price[M]) Ticks() int64 { return p.ticks }

// Decimal returns the price as a decimal.
func (p Price[M]) Decimal() decimal.Decimal {
	var m M
	return QuoteSize(m.Atom()).Mul(decimal.NewFromInt(p.ticks))
}

// String renders the price with the precision of its quote size.
func (p Price[M]) String() string {
	var m M
	return p.Decimal().StringFixed(-QuoteSize(m.Atom()).Exponent())
}
