package wif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wiferrors "github.com/mdsherry/wif/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"999,0,500", Color{Red: 999, Green: 0, Blue: 500}},
		{"0,0,0", Color{}},
		{" 1, 2 , 3", Color{Red: 1, Green: 2, Blue: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejectsWrongArity(t *testing.T) {
	for _, bad := range []string{"1,2", "1,2,3,4", "1"} {
		_, err := parseColor(bad)
		assert.ErrorIs(t, err, wiferrors.ErrColorParts, "parseColor(%q)", bad)
	}
	// a non-numeric part is a number error, not an arity error
	_, err := parseColor("1,x,3")
	assert.NotErrorIs(t, err, wiferrors.ErrColorParts)
	assert.Error(t, err)
}

func TestColorCanonicalForm(t *testing.T) {
	text, ok := formatColor(Color{Red: 999, Green: 0, Blue: 500})
	require.True(t, ok)
	assert.Equal(t, "999,0,500", text)
}

func TestParseColorRange(t *testing.T) {
	r, err := parseColorRange("10,20")
	require.NoError(t, err)
	assert.Equal(t, ColorRange{Min: 10, Max: 20}, r)

	text, ok := formatColorRange(r)
	require.True(t, ok)
	assert.Equal(t, "10,20", text)

	var pairErr *wiferrors.PairError
	_, err = parseColorRange("")
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "", pairErr.Saw)

	_, err = parseColorRange("12")
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "12", pairErr.Saw)
}

func TestColorRangeScale(t *testing.T) {
	r := ColorRange{Min: 0, Max: 999}
	assert.Equal(t, uint8(255), r.scale(999))
	assert.Equal(t, uint8(0), r.scale(0))
	// 500/999*255 = 127.6..., truncated
	assert.Equal(t, uint8(127), r.scale(500))
	// out-of-range values clamp
	assert.Equal(t, uint8(255), r.scale(2000))

	shifted := ColorRange{Min: 100, Max: 200}
	assert.Equal(t, uint8(0), shifted.scale(100))
	assert.Equal(t, uint8(255), shifted.scale(200))
	assert.Equal(t, uint8(0), shifted.scale(50))
}

func TestParseBaseColor(t *testing.T) {
	bc, err := parseBaseColor("4")
	require.NoError(t, err)
	assert.Equal(t, BaseColor{Index: 4}, bc)
	text, ok := formatBaseColor(bc)
	require.True(t, ok)
	assert.Equal(t, "4", text)

	bc, err = parseBaseColor("4,255,0,0")
	require.NoError(t, err)
	require.NotNil(t, bc.Alt)
	assert.Equal(t, uint32(4), bc.Index)
	assert.Equal(t, Color{Red: 255, Green: 0, Blue: 0}, *bc.Alt)
	text, ok = formatBaseColor(bc)
	require.True(t, ok)
	assert.Equal(t, "4,255,0,0", text)

	_, err = parseBaseColor("4,255,0")
	assert.Error(t, err)
	_, err = parseBaseColor("x")
	assert.Error(t, err)
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in   string
		kind SymbolKind
		r    rune
	}{
		{"x", SymbolChar, 'x'},
		{"'x", SymbolQuoted, 'x'},
		{"'#", SymbolQuoted, '#'},
		{"#64", SymbolCode, '@'},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sym, err := parseSymbol(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, sym.Kind)
			assert.Equal(t, tt.r, sym.Rune)

			text, ok := formatSymbol(sym)
			require.True(t, ok)
			assert.Equal(t, tt.in, text, "symbol should round-trip")
		})
	}

	for _, bad := range []string{"", "'", "#x", "#99999999"} {
		_, err := parseSymbol(bad)
		assert.Error(t, err, "parseSymbol(%q)", bad)
	}
}

func TestParseSet(t *testing.T) {
	s, err := parseSet[Shaft]("1,3,5")
	require.NoError(t, err)
	assert.Equal(t, []Shaft{1, 3, 5}, s.Sorted())

	// duplicates collapse, order does not matter
	s, err = parseSet[Shaft]("5,1,3,1")
	require.NoError(t, err)
	assert.Equal(t, []Shaft{1, 3, 5}, s.Sorted())

	text, ok := formatSet(s)
	require.True(t, ok)
	assert.Equal(t, "1,3,5", text)

	_, err = parseSet[Shaft]("1,x")
	assert.Error(t, err)
	_, err = parseSet[Shaft]("")
	assert.Error(t, err)
}

func TestSetOperations(t *testing.T) {
	a := NewSet[Treadle](2, 1)
	b := NewSet[Treadle](1, 2)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Has(1))
	assert.False(t, a.Has(3))

	b.Add(3)
	assert.False(t, a.Equal(b))
	assert.Equal(t, []Treadle{1, 2, 3}, b.Sorted())
}
