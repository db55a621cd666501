package wif

import wiferrors "github.com/mdsherry/wif/errors"

// composeLiftplan derives a liftplan from treadling and tieup: each weft
// row lifts the union of the shafts tied to every treadle pressed on that
// row. Treadles with no tieup entry contribute nothing. The second return
// is false when the inputs are insufficient (no treadling, or treadling
// rows with no tieup at all).
func composeLiftplan(treadling map[Weft]Set[Treadle], tieup map[Treadle]Set[Shaft]) (map[Weft]Set[Shaft], bool) {
	if treadling == nil {
		return nil, false
	}
	if len(treadling) > 0 && tieup == nil {
		return nil, false
	}
	lift := make(map[Weft]Set[Shaft], len(treadling))
	for row, treadles := range treadling {
		shafts := make(Set[Shaft])
		for t := range treadles {
			for s := range tieup[t] {
				shafts.Add(s)
			}
		}
		lift[row] = shafts
	}
	return lift, true
}

// reconcileLiftplan is the final assembly step. With no treadling+tieup the
// document stands as-is (with or without an explicit liftplan). With
// treadling+tieup but no liftplan, the composed result is filled in. With
// both, every row must be set-equal or the document is rejected.
func (d *Document) reconcileLiftplan() error {
	composed, ok := composeLiftplan(d.Treadling, d.Tieup)
	switch {
	case !ok:
		return nil
	case d.Liftplan == nil:
		d.Liftplan = composed
		return nil
	case liftplanEqual(composed, d.Liftplan):
		return nil
	default:
		return wiferrors.ErrLiftplanMismatch
	}
}

func liftplanEqual(a, b map[Weft]Set[Shaft]) bool {
	if len(a) != len(b) {
		return false
	}
	for row, shafts := range a {
		if !shafts.Equal(b[row]) {
			return false
		}
	}
	return true
}

// Face classifies which thread shows on top of a cell of the cloth.
type Face int

const (
	// FaceWarp means the warp thread passes over the weft at the cell.
	FaceWarp Face = iota
	// FaceWeft means the weft thread passes over the warp at the cell.
	FaceWeft
)

func (f Face) String() string {
	if f == FaceWarp {
		return "warp"
	}
	return "weft"
}

// Dominant classifies the cell at (warp, weft): warp-faced when any shaft
// lifted on that row is threaded with that warp thread, weft-faced
// otherwise. It requires both a liftplan (explicit or derived) and a
// threading table; a missing row or column reads as weft-faced.
func (d *Document) Dominant(warp Warp, weft Weft) (Face, bool) {
	if d.Liftplan == nil || d.Threading == nil {
		return 0, false
	}
	lifted, ok := d.Liftplan[weft]
	if !ok {
		// TODO: a sinking-shed loom inverts the lift sense; Weaving.RisingShed
		// may need to flip this default.
		return FaceWeft, true
	}
	threaded, ok := d.Threading[warp]
	if !ok {
		return FaceWeft, true
	}
	for s := range threaded {
		if lifted.Has(s) {
			return FaceWarp, true
		}
	}
	return FaceWeft, true
}

// colorAt resolves an index through the color table.
func (d *Document) colorAt(idx uint32) (Color, bool) {
	c, ok := d.ColorTable[idx]
	return c, ok
}

// threadDefaultColor resolves the base color declared on a [WARP] or
// [WEFT] record.
func (d *Document) threadDefaultColor(t *Thread) (Color, bool) {
	if t == nil || t.Color == nil {
		return Color{}, false
	}
	return d.colorAt(t.Color.Index)
}

// WarpColor resolves the color of one warp thread: its WARP COLORS entry
// if that resolves through the color table, otherwise the [WARP] base
// color. The second return is false when neither resolves.
func (d *Document) WarpColor(warp Warp) (Color, bool) {
	if idx, ok := d.WarpColors[warp]; ok {
		if c, ok := d.colorAt(idx); ok {
			return c, true
		}
	}
	return d.threadDefaultColor(d.Warp)
}

// WeftColor resolves the color of one weft thread; see WarpColor.
func (d *Document) WeftColor(weft Weft) (Color, bool) {
	if idx, ok := d.WeftColors[weft]; ok {
		if c, ok := d.colorAt(idx); ok {
			return c, true
		}
	}
	return d.threadDefaultColor(d.Weft)
}

// colorRange is the declared palette range, defaulting to 0-999.
func (d *Document) colorRange() ColorRange {
	if d.ColorPalette != nil {
		return d.ColorPalette.Range
	}
	return defaultColorRange
}

// WarpColorRGB is WarpColor normalized to 8-bit channels against the
// palette range.
func (d *Document) WarpColorRGB(warp Warp) ([3]uint8, bool) {
	c, ok := d.WarpColor(warp)
	if !ok {
		return [3]uint8{}, false
	}
	return d.normalize(c), true
}

// WeftColorRGB is WeftColor normalized to 8-bit channels against the
// palette range.
func (d *Document) WeftColorRGB(weft Weft) ([3]uint8, bool) {
	c, ok := d.WeftColor(weft)
	if !ok {
		return [3]uint8{}, false
	}
	return d.normalize(c), true
}

func (d *Document) normalize(c Color) [3]uint8 {
	r := d.colorRange()
	return [3]uint8{r.scale(c.Red), r.scale(c.Green), r.scale(c.Blue)}
}

// Shafts returns the declared shaft count, if a [WEAVING] section was
// present.
func (d *Document) Shafts() (uint32, bool) {
	if d.Weaving == nil {
		return 0, false
	}
	return d.Weaving.Shafts, true
}

// Treadles returns the declared treadle count, if a [WEAVING] section was
// present.
func (d *Document) Treadles() (uint32, bool) {
	if d.Weaving == nil {
		return 0, false
	}
	return d.Weaving.Treadles, true
}

// Width returns the declared warp thread count, if a [WARP] section was
// present.
func (d *Document) Width() (uint32, bool) {
	if d.Warp == nil {
		return 0, false
	}
	return d.Warp.Threads, true
}

// Height returns the declared weft thread count, if a [WEFT] section was
// present.
func (d *Document) Height() (uint32, bool) {
	if d.Weft == nil {
		return 0, false
	}
	return d.Weft.Threads, true
}
