package wif

import "time"

// Document is a fully assembled weaving draft: the mandatory header plus
// every optional section that was present in the source text. A nil
// pointer or nil map means the section was absent. Documents are built by
// Parse and not mutated afterwards, except that assembly may fill in a
// liftplan derived from treadling and tieup.
type Document struct {
	Header Header

	ColorPalette      *ColorPalette
	WarpSymbolPalette *SymbolPalette
	WeftSymbolPalette *SymbolPalette
	Text              *Text
	Weaving           *Weaving
	Warp              *Thread
	Weft              *Thread

	ColorTable      map[uint32]Color
	Notes           map[uint32]string
	WarpSymbolTable map[uint32]string
	WeftSymbolTable map[uint32]string

	Tieup     map[Treadle]Set[Shaft]
	Threading map[Warp]Set[Shaft]
	Treadling map[Weft]Set[Treadle]
	Liftplan  map[Weft]Set[Shaft]

	WarpThickness     map[Warp]float64
	WarpThicknessZoom map[Warp]uint32
	WarpSpacing       map[Warp]float64
	WarpSpacingZoom   map[Warp]uint32
	WarpColors        map[Warp]uint32
	WarpSymbols       map[Warp]uint32

	WeftThickness     map[Weft]float64
	WeftThicknessZoom map[Weft]uint32
	WeftSpacing       map[Weft]float64
	WeftSpacingZoom   map[Weft]uint32
	WeftColors        map[Weft]uint32
	WeftSymbols       map[Weft]uint32
}

// Header is the mandatory [WIF] section identifying the file format
// version and the program that produced the draft.
type Header struct {
	Version       string
	Date          time.Time
	Developers    string
	SourceProgram string
	// SourceVersion is optional; empty means it was not declared.
	SourceVersion string
}

// ColorPalette declares how many colors the color table holds and the
// inclusive channel value range they are expressed in.
type ColorPalette struct {
	Entries int
	Range   ColorRange
}

// SymbolPalette declares how many entries a symbol table holds.
type SymbolPalette struct {
	Entries int
}

// Text carries free-form provenance metadata. Every field is optional;
// empty means absent.
type Text struct {
	Title     string
	Author    string
	Address   string
	EMail     string
	Telephone string
	Fax       string
}

// Weaving is the loom geometry: shaft and treadle counts, and whether the
// loom raises (rather than sinks) the tied shafts.
type Weaving struct {
	Shafts     uint32
	Treadles   uint32
	RisingShed *bool
}

// Thread describes one axis of the cloth (the [WARP] or [WEFT] section):
// the thread count plus default styling applying to every thread on the
// axis unless a per-thread table overrides it.
type Thread struct {
	Threads       uint32
	Color         *BaseColor
	Symbol        *Symbol
	SymbolNumber  *int
	Units         string
	Spacing       *float64
	Thickness     *float64
	SpacingZoom   *uint32
	ThicknessZoom *uint32
}
