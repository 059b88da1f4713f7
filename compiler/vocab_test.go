package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staticatom/atom"
	"staticatom/constants"
)

var (
	smallSet = []string{"BTC-EUR", "ETH-EUR", "ETH-BTC"}

	bigSet = []string{
		"BTC-EUR", "ETH-EUR", "ETH-BTC", "BTC-USDC", "ETH-USDC", "ETC-BTC", "ETC-EUR", "BTC-USD", "BCH-BTC",
		"BCH-USD", "BTC-GBP", "ETH-USD", "LTC-BTC", "LTC-EUR", "LTC-USD", "BCH-EUR", "ETC-USD", "ZRX-USD",
		"ZRX-BTC", "ZRX-EUR", "ETC-GBP", "ETH-GBP", "LTC-GBP", "BCH-GBP",
	}
)

func mustVocab(t testing.TB, texts ...string) *Vocabulary {
	t.Helper()
	v, err := NewVocabulary(Texts(texts...))
	require.NoError(t, err)
	return v
}

// ============================================================================
// VOCABULARY TESTS
// ============================================================================

func TestNewVocabularyOrdinals(t *testing.T) {
	v := mustVocab(t, smallSet...)

	require.Equal(t, 3, v.Len())
	for i, s := range smallSet {
		n, ok := v.Ordinal(s)
		assert.True(t, ok, s)
		assert.Equal(t, i, n, s)

		a, err := v.Atom(i)
		require.NoError(t, err)
		assert.Equal(t, s, a.Text)
		assert.Equal(t, i, a.Ordinal)
	}
	assert.Equal(t, "BTCEUR", v.Atoms()[0].Ident)

	_, ok := v.Ordinal("LTC-EUR")
	assert.False(t, ok)
}

func TestVocabularyAtomOutOfRange(t *testing.T) {
	v := mustVocab(t, smallSet...)
	for _, n := range []int{-1, 3, 7} {
		_, err := v.Atom(n)
		assert.ErrorIs(t, err, atom.ErrOrdinalRange, "ordinal %d", n)
	}
}

func TestNewVocabularyErrors(t *testing.T) {
	long := strings.Repeat("x", constants.MaxAtomLen+1)
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"empty", nil, ErrEmptyVocabulary},
		{"empty atom", Texts("BTC-EUR", ""), ErrEmptyAtom},
		{"duplicate", Texts("BTC-EUR", "ETH-EUR", "BTC-EUR"), ErrDuplicateAtom},
		{"too long", Texts(long), ErrAtomTooLong},
		{"explicit collision", []Entry{{Text: "a", Ident: "X"}, {Text: "b", Ident: "X"}}, ErrIdentCollision},
		{"explicit takes ordinal name", []Entry{{Text: "+"}, {Text: "x", Ident: "A_0"}}, ErrIdentCollision},
		{"unexported ident", []Entry{{Text: "a", Ident: "lower"}}, ErrBadIdent},
		{"keyword ident", []Entry{{Text: "a", Ident: "func"}}, ErrBadIdent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVocabulary(tt.entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var be *BuildError
			assert.True(t, errors.As(err, &be))
		})
	}
}

func TestNewVocabularyTooMany(t *testing.T) {
	entries := make([]Entry, constants.MaxAtoms+1)
	_, err := NewVocabulary(entries)
	assert.ErrorIs(t, err, ErrTooManyAtoms)
}

func TestBuildErrorMessage(t *testing.T) {
	_, err := NewVocabulary(Texts("BTC-EUR", "BTC-EUR"))
	assert.EqualError(t, err, `compiler: duplicate atom "BTC-EUR": ordinals 0 and 1`)

	_, err = NewVocabulary([]Entry{{Text: "\xff\x00", Ident: "X"}, {Text: "b", Ident: "X"}})
	assert.EqualError(t, err, `compiler: identifier collision "b": X already names "\xff\x00"`)
}

func TestClassesAscending(t *testing.T) {
	v := mustVocab(t, "BTC-USDC", "BTC-EUR", "X", "ETH-EUR")
	classes := v.Classes()
	require.Len(t, classes, 3)

	assert.Equal(t, 1, classes[0].Len)
	assert.Equal(t, 7, classes[1].Len)
	assert.Equal(t, 8, classes[2].Len)

	// Declaration order inside a class
	assert.Equal(t, "BTC-EUR", classes[1].Atoms[0].Text)
	assert.Equal(t, "ETH-EUR", classes[1].Atoms[1].Text)
}

func TestDeriveIdent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"BTC-EUR", "BTCEUR"},
		{"eth/usd", "EthUsd"},
		{"btc_usdc", "BtcUsdc"},
		{"1INCH-EUR", "A1INCHEUR"},
		{"---", ""},
		{"\x00\xff", ""},
		{"x", "X"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveIdent(tt.in), tt.in)
	}
}

func TestDerivedIdentFallback(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []string
	}{
		{"separator only differs", Texts("BTC-EUR", "BTC_EUR", "BTC/EUR"), []string{"BTCEUR", "BTCEUR_1", "BTCEUR_2"}},
		{"no letters", Texts("+", "-"), []string{"A_0", "A_1"}},
		{"binary", Texts("\x00\xff", "\xff\x00"), []string{"A_0", "A_1"}},
		{"case only differs", Texts("a", "A"), []string{"A", "A_1"}},
		{"explicit wins", []Entry{{Text: "BTC-EUR"}, {Text: "ETH-EUR", Ident: "BTCEUR"}}, []string{"BTCEUR_0", "BTCEUR"}},
		{"ordinal name not reused", Texts("A_1", "+"), []string{"A1", "A_1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVocabulary(tt.entries)
			require.NoError(t, err)
			var got []string
			for _, a := range v.Atoms() {
				got = append(got, a.Ident)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExplicitIdent(t *testing.T) {
	v, err := NewVocabulary([]Entry{{Text: "BTC-EUR", Ident: "BitcoinEuro"}, {Text: "ETH-EUR"}})
	require.NoError(t, err)
	assert.Equal(t, "BitcoinEuro", v.Atoms()[0].Ident)
	assert.Equal(t, "ETHEUR", v.Atoms()[1].Ident)
}
