package wif

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	wiferrors "github.com/mdsherry/wif/errors"
	"github.com/mdsherry/wif/internal/codec"
)

// Color is an RGB triple. Channel values are meaningful only relative to
// the palette range declared in [COLOR PALETTE] (default 0-999).
type Color struct {
	Red   uint32
	Green uint32
	Blue  uint32
}

func parseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	channels := make([]uint32, 0, len(parts))
	for _, part := range parts {
		v, err := codec.Uint32(strings.TrimSpace(part))
		if err != nil {
			return Color{}, err
		}
		channels = append(channels, v)
	}
	if len(channels) != 3 {
		return Color{}, wiferrors.ErrColorParts
	}
	return Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

func formatColor(c Color) (string, bool) {
	return fmt.Sprintf("%d,%d,%d", c.Red, c.Green, c.Blue), true
}

// ColorRange is the inclusive bounds declared for palette channel values.
type ColorRange struct {
	Min uint32
	Max uint32
}

// defaultColorRange applies when no [COLOR PALETTE] section is present.
var defaultColorRange = ColorRange{Min: 0, Max: 999}

func parseColorRange(s string) (ColorRange, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return ColorRange{}, &wiferrors.PairError{Saw: s}
	}
	minV, err := codec.Uint32(lo)
	if err != nil {
		return ColorRange{}, err
	}
	maxV, err := codec.Uint32(hi)
	if err != nil {
		return ColorRange{}, err
	}
	return ColorRange{Min: minV, Max: maxV}, nil
}

func formatColorRange(r ColorRange) (string, bool) {
	return fmt.Sprintf("%d,%d", r.Min, r.Max), true
}

// scale normalizes a channel value from r to the 0-255 scale, truncating.
// Values outside r clamp rather than wrap.
func (r ColorRange) scale(v uint32) uint8 {
	if r.Max <= r.Min {
		return 0
	}
	scaled := (float64(v) - float64(r.Min)) / float64(r.Max-r.Min) * 255
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	}
	return uint8(scaled)
}

// BaseColor is a thread's declared color: an index into the color table,
// optionally with an inline RGB alternate for programs that ignore the
// table.
type BaseColor struct {
	Index uint32
	Alt   *Color
}

func parseBaseColor(s string) (BaseColor, error) {
	head, rest, ok := strings.Cut(s, ",")
	if !ok {
		idx, err := codec.Uint32(s)
		if err != nil {
			return BaseColor{}, err
		}
		return BaseColor{Index: idx}, nil
	}
	idx, err := codec.Uint32(head)
	if err != nil {
		return BaseColor{}, err
	}
	alt, err := parseColor(rest)
	if err != nil {
		return BaseColor{}, err
	}
	return BaseColor{Index: idx, Alt: &alt}, nil
}

func formatBaseColor(c BaseColor) (string, bool) {
	if c.Alt == nil {
		return strconv.FormatUint(uint64(c.Index), 10), true
	}
	return fmt.Sprintf("%d,%d,%d,%d", c.Index, c.Alt.Red, c.Alt.Green, c.Alt.Blue), true
}

// SymbolKind distinguishes the three lexical forms a symbol value can take.
type SymbolKind int

const (
	// SymbolChar is a bare character, taken literally.
	SymbolChar SymbolKind = iota
	// SymbolQuoted is a character introduced by a leading apostrophe.
	SymbolQuoted
	// SymbolCode is a decimal code point introduced by '#'.
	SymbolCode
)

// Symbol is the character drawn for a thread in a draft rendering.
type Symbol struct {
	Kind SymbolKind
	Rune rune
}

func parseSymbol(s string) (Symbol, error) {
	switch {
	case s == "":
		return Symbol{}, fmt.Errorf("symbol must not be empty")
	case s[0] == '\'':
		r, _ := utf8.DecodeRuneInString(s[1:])
		if r == utf8.RuneError {
			return Symbol{}, fmt.Errorf("quoted symbol must name a character")
		}
		return Symbol{Kind: SymbolQuoted, Rune: r}, nil
	case s[0] == '#':
		code, err := codec.Uint32(s[1:])
		if err != nil {
			return Symbol{}, err
		}
		if code > utf8.MaxRune {
			return Symbol{}, fmt.Errorf("symbol code %d is not a character", code)
		}
		return Symbol{Kind: SymbolCode, Rune: rune(code)}, nil
	default:
		r, _ := utf8.DecodeRuneInString(s)
		return Symbol{Kind: SymbolChar, Rune: r}, nil
	}
}

func formatSymbol(sym Symbol) (string, bool) {
	switch sym.Kind {
	case SymbolQuoted:
		return "'" + string(sym.Rune), true
	case SymbolCode:
		return fmt.Sprintf("#%d", sym.Rune), true
	default:
		return string(sym.Rune), true
	}
}

// parseSet decodes a comma-separated identifier list into an ordered set.
func parseSet[E ~uint32](s string) (Set[E], error) {
	ids, err := codec.List(codec.Uint32)(s)
	if err != nil {
		return nil, err
	}
	set := make(Set[E], len(ids))
	for _, id := range ids {
		set.Add(E(id))
	}
	return set, nil
}

// formatSet encodes the members in ascending order.
func formatSet[E ~uint32](set Set[E]) (string, bool) {
	members := set.Sorted()
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, strconv.FormatUint(uint64(m), 10))
	}
	return strings.Join(parts, ","), true
}
