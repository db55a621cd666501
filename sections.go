package wif

import (
	"maps"
	"slices"
	"strconv"

	wiferrors "github.com/mdsherry/wif/errors"
	"github.com/mdsherry/wif/internal/codec"
	"github.com/mdsherry/wif/internal/rawdoc"
)

// Canonical section names. Reading is case-insensitive; writing always
// emits these spellings.
const (
	sectionWIF      = "WIF"
	sectionContents = "CONTENTS"

	sectionColorPalette      = "COLOR PALETTE"
	sectionColorTable        = "COLOR TABLE"
	sectionWarpSymbolPalette = "WARP SYMBOL PALETTE"
	sectionWeftSymbolPalette = "WEFT SYMBOL PALETTE"
	sectionText              = "TEXT"
	sectionWeaving           = "WEAVING"
	sectionWarp              = "WARP"
	sectionWeft              = "WEFT"
	sectionNotes             = "NOTES"
	sectionTieup             = "TIEUP"
	sectionWarpSymbolTable   = "WARP SYMBOL TABLE"
	sectionWeftSymbolTable   = "WEFT SYMBOL TABLE"
	sectionThreading         = "THREADING"
	sectionTreadling         = "TREADLING"
	sectionLiftplan          = "LIFTPLAN"

	sectionWarpThickness     = "WARP THICKNESS"
	sectionWarpThicknessZoom = "WARP THICKNESS ZOOM"
	sectionWarpSpacing       = "WARP SPACING"
	sectionWarpSpacingZoom   = "WARP SPACING ZOOM"
	sectionWarpColors        = "WARP COLORS"
	sectionWarpSymbols       = "WARP SYMBOLS"

	sectionWeftThickness     = "WEFT THICKNESS"
	sectionWeftThicknessZoom = "WEFT THICKNESS ZOOM"
	sectionWeftSpacing       = "WEFT SPACING"
	sectionWeftSpacingZoom   = "WEFT SPACING ZOOM"
	sectionWeftColors        = "WEFT COLORS"
	sectionWeftSymbols       = "WEFT SYMBOLS"
)

// requiredField fetches and decodes section.field, failing if the line is
// absent or undecodable. Decode failures carry (section, field) context.
func requiredField[T any](doc *rawdoc.Document, section, field string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, ok := doc.Lookup(section, field)
	if !ok {
		return zero, &wiferrors.MissingFieldError{Section: section, Field: field}
	}
	v, err := parse(raw)
	if err != nil {
		return zero, wiferrors.InField(section, field, err)
	}
	return v, nil
}

// optionalField is requiredField except that an absent line yields nil
// rather than an error. A present but undecodable line is still an error.
func optionalField[T any](doc *rawdoc.Document, section, field string, parse func(string) (T, error)) (*T, error) {
	raw, ok := doc.Lookup(section, field)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, wiferrors.InField(section, field, err)
	}
	return &v, nil
}

func optionalString(doc *rawdoc.Document, section, field string) (string, error) {
	v, err := optionalField(doc, section, field, codec.String)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

// present reports whether CONTENTS flags section as existing. An absent or
// false flag means the section is skipped entirely, even if matching lines
// exist in the text.
func present(doc *rawdoc.Document, section string) (bool, error) {
	flag, err := optionalField(doc, sectionContents, section, codec.Bool)
	if err != nil {
		return false, err
	}
	return flag != nil && *flag, nil
}

// readTable decodes a section whose entries are identifier = value.
// The section must exist (it is only read when CONTENTS says it does);
// entries with an empty value are skipped.
func readTable[K ~uint32, V any](doc *rawdoc.Document, section string, parse func(string) (V, error)) (map[K]V, error) {
	entries, ok := doc.Entries(section)
	if !ok {
		return nil, &wiferrors.MissingSectionError{Section: section}
	}
	table := make(map[K]V, len(entries))
	for _, entry := range entries {
		if entry.Value == "" {
			continue
		}
		id, err := strconv.ParseUint(entry.Key, 10, 32)
		if err != nil {
			return nil, &wiferrors.TableKeyError{Section: section, Key: entry.Key}
		}
		v, err := parse(entry.Value)
		if err != nil {
			return nil, wiferrors.InField(section, entry.Key, err)
		}
		table[K(id)] = v
	}
	return table, nil
}

// writeTable emits a keyed table in ascending key order, skipping values
// that encode to absent.
func writeTable[K ~uint32, V any](w *rawdoc.Writer, section string, table map[K]V, format func(V) (string, bool)) {
	// An empty table is still flagged in CONTENTS, so its header must
	// appear or the document would not read back.
	w.Ensure(section)
	for _, k := range slices.Sorted(maps.Keys(table)) {
		if text, ok := format(table[k]); ok {
			w.Set(section, strconv.FormatUint(uint64(k), 10), text)
		}
	}
}

// readRecordSection reads one fixed-shape section into *dst if CONTENTS
// flags it present.
func readRecordSection[T any](doc *rawdoc.Document, section string, read func(*rawdoc.Document, string) (T, error), dst **T) error {
	ok, err := present(doc, section)
	if err != nil || !ok {
		return err
	}
	v, err := read(doc, section)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}

// readTableSection reads one keyed table into *dst if CONTENTS flags it
// present.
func readTableSection[K ~uint32, V any](doc *rawdoc.Document, section string, parse func(string) (V, error), dst *map[K]V) error {
	ok, err := present(doc, section)
	if err != nil || !ok {
		return err
	}
	table, err := readTable[K](doc, section, parse)
	if err != nil {
		return err
	}
	*dst = table
	return nil
}

func readHeader(doc *rawdoc.Document) (Header, error) {
	var h Header
	var err error
	if h.Version, err = requiredField(doc, sectionWIF, "Version", codec.String); err != nil {
		return Header{}, err
	}
	if h.Date, err = requiredField(doc, sectionWIF, "Date", codec.Date); err != nil {
		return Header{}, err
	}
	if h.Developers, err = requiredField(doc, sectionWIF, "Developers", codec.String); err != nil {
		return Header{}, err
	}
	if h.SourceProgram, err = requiredField(doc, sectionWIF, "Source Program", codec.String); err != nil {
		return Header{}, err
	}
	if h.SourceVersion, err = optionalString(doc, sectionWIF, "Source Version"); err != nil {
		return Header{}, err
	}
	return h, nil
}

func readColorPalette(doc *rawdoc.Document, section string) (ColorPalette, error) {
	var p ColorPalette
	var err error
	if p.Entries, err = requiredField(doc, section, "Entries", codec.Int); err != nil {
		return ColorPalette{}, err
	}
	if p.Range, err = requiredField(doc, section, "Range", parseColorRange); err != nil {
		return ColorPalette{}, err
	}
	return p, nil
}

func readSymbolPalette(doc *rawdoc.Document, section string) (SymbolPalette, error) {
	entries, err := requiredField(doc, section, "Entries", codec.Int)
	if err != nil {
		return SymbolPalette{}, err
	}
	return SymbolPalette{Entries: entries}, nil
}

func readText(doc *rawdoc.Document, section string) (Text, error) {
	var t Text
	fields := []struct {
		name string
		dst  *string
	}{
		{"Title", &t.Title},
		{"Author", &t.Author},
		{"Address", &t.Address},
		{"EMail", &t.EMail},
		{"Telephone", &t.Telephone},
		{"Fax", &t.Fax},
	}
	for _, f := range fields {
		v, err := optionalString(doc, section, f.name)
		if err != nil {
			return Text{}, err
		}
		*f.dst = v
	}
	return t, nil
}

func readWeaving(doc *rawdoc.Document, section string) (Weaving, error) {
	var w Weaving
	var err error
	if w.Shafts, err = requiredField(doc, section, "Shafts", codec.Uint32); err != nil {
		return Weaving{}, err
	}
	if w.Treadles, err = requiredField(doc, section, "Treadles", codec.Uint32); err != nil {
		return Weaving{}, err
	}
	if w.RisingShed, err = optionalField(doc, section, "Rising Shed", codec.Bool); err != nil {
		return Weaving{}, err
	}
	return w, nil
}

func readThread(doc *rawdoc.Document, section string) (Thread, error) {
	var t Thread
	var err error
	if t.Threads, err = requiredField(doc, section, "Threads", codec.Uint32); err != nil {
		return Thread{}, err
	}
	if t.Color, err = optionalField(doc, section, "Color", parseBaseColor); err != nil {
		return Thread{}, err
	}
	if t.Symbol, err = optionalField(doc, section, "Symbol", parseSymbol); err != nil {
		return Thread{}, err
	}
	if t.SymbolNumber, err = optionalField(doc, section, "Symbol Number", codec.Int); err != nil {
		return Thread{}, err
	}
	if t.Units, err = optionalString(doc, section, "Units"); err != nil {
		return Thread{}, err
	}
	if t.Spacing, err = optionalField(doc, section, "Spacing", codec.Float); err != nil {
		return Thread{}, err
	}
	if t.Thickness, err = optionalField(doc, section, "Thickness", codec.Float); err != nil {
		return Thread{}, err
	}
	if t.SpacingZoom, err = optionalField(doc, section, "Spacing Zoom", codec.Uint32); err != nil {
		return Thread{}, err
	}
	if t.ThicknessZoom, err = optionalField(doc, section, "Thickness Zoom", codec.Uint32); err != nil {
		return Thread{}, err
	}
	return t, nil
}

// assemble builds a Document from the raw section map: the header
// unconditionally, every other section only when CONTENTS flags it, and
// liftplan reconciliation last. Any failure discards the partial result.
func assemble(doc *rawdoc.Document) (*Document, error) {
	header, err := readHeader(doc)
	if err != nil {
		return nil, err
	}
	d := &Document{Header: header}

	if err := readRecordSection(doc, sectionColorPalette, readColorPalette, &d.ColorPalette); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionWarpSymbolPalette, readSymbolPalette, &d.WarpSymbolPalette); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionWeftSymbolPalette, readSymbolPalette, &d.WeftSymbolPalette); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionText, readText, &d.Text); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionWeaving, readWeaving, &d.Weaving); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionWarp, readThread, &d.Warp); err != nil {
		return nil, err
	}
	if err := readRecordSection(doc, sectionWeft, readThread, &d.Weft); err != nil {
		return nil, err
	}

	if err := readTableSection(doc, sectionColorTable, parseColor, &d.ColorTable); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionNotes, codec.String, &d.Notes); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpSymbolTable, codec.String, &d.WarpSymbolTable); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftSymbolTable, codec.String, &d.WeftSymbolTable); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionTieup, parseSet[Shaft], &d.Tieup); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionThreading, parseSet[Shaft], &d.Threading); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionTreadling, parseSet[Treadle], &d.Treadling); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionLiftplan, parseSet[Shaft], &d.Liftplan); err != nil {
		return nil, err
	}

	if err := readTableSection(doc, sectionWarpThickness, codec.Float, &d.WarpThickness); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpThicknessZoom, codec.Uint32, &d.WarpThicknessZoom); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpSpacing, codec.Float, &d.WarpSpacing); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpSpacingZoom, codec.Uint32, &d.WarpSpacingZoom); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpColors, codec.Uint32, &d.WarpColors); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWarpSymbols, codec.Uint32, &d.WarpSymbols); err != nil {
		return nil, err
	}

	if err := readTableSection(doc, sectionWeftThickness, codec.Float, &d.WeftThickness); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftThicknessZoom, codec.Uint32, &d.WeftThicknessZoom); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftSpacing, codec.Float, &d.WeftSpacing); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftSpacingZoom, codec.Uint32, &d.WeftSpacingZoom); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftColors, codec.Uint32, &d.WeftColors); err != nil {
		return nil, err
	}
	if err := readTableSection(doc, sectionWeftSymbols, codec.Uint32, &d.WeftSymbols); err != nil {
		return nil, err
	}

	if err := d.reconcileLiftplan(); err != nil {
		return nil, err
	}
	return d, nil
}

func setField[T any](w *rawdoc.Writer, section, field string, v T, format func(T) (string, bool)) {
	if text, ok := format(v); ok {
		w.Set(section, field, text)
	}
}

func setOptField[T any](w *rawdoc.Writer, section, field string, v *T, format func(T) (string, bool)) {
	if v != nil {
		setField(w, section, field, *v, format)
	}
}

func setNonEmpty(w *rawdoc.Writer, section, field, v string) {
	if v != "" {
		w.Set(section, field, v)
	}
}

func writeHeader(w *rawdoc.Writer, h Header) {
	w.Set(sectionWIF, "Version", h.Version)
	setField(w, sectionWIF, "Date", h.Date, codec.FormatDate)
	w.Set(sectionWIF, "Developers", h.Developers)
	w.Set(sectionWIF, "Source Program", h.SourceProgram)
	setNonEmpty(w, sectionWIF, "Source Version", h.SourceVersion)
}

func writeColorPalette(w *rawdoc.Writer, section string, p ColorPalette) {
	setField(w, section, "Entries", p.Entries, codec.FormatInt)
	setField(w, section, "Range", p.Range, formatColorRange)
}

func writeSymbolPalette(w *rawdoc.Writer, section string, p SymbolPalette) {
	setField(w, section, "Entries", p.Entries, codec.FormatInt)
}

func writeText(w *rawdoc.Writer, section string, t Text) {
	setNonEmpty(w, section, "Title", t.Title)
	setNonEmpty(w, section, "Author", t.Author)
	setNonEmpty(w, section, "Address", t.Address)
	setNonEmpty(w, section, "EMail", t.EMail)
	setNonEmpty(w, section, "Telephone", t.Telephone)
	setNonEmpty(w, section, "Fax", t.Fax)
}

func writeWeaving(w *rawdoc.Writer, section string, v Weaving) {
	setField(w, section, "Shafts", v.Shafts, codec.FormatUint32)
	setField(w, section, "Treadles", v.Treadles, codec.FormatUint32)
	setOptField(w, section, "Rising Shed", v.RisingShed, codec.FormatBool)
}

func writeThread(w *rawdoc.Writer, section string, t Thread) {
	setField(w, section, "Threads", t.Threads, codec.FormatUint32)
	setOptField(w, section, "Color", t.Color, formatBaseColor)
	setOptField(w, section, "Symbol", t.Symbol, formatSymbol)
	setOptField(w, section, "Symbol Number", t.SymbolNumber, codec.FormatInt)
	setNonEmpty(w, section, "Units", t.Units)
	setOptField(w, section, "Spacing", t.Spacing, codec.FormatFloat)
	setOptField(w, section, "Thickness", t.Thickness, codec.FormatFloat)
	setOptField(w, section, "Spacing Zoom", t.SpacingZoom, codec.FormatUint32)
	setOptField(w, section, "Thickness Zoom", t.ThicknessZoom, codec.FormatUint32)
}

// sectionWriters lists every optional section in canonical output order:
// whether the document carries it, and how to emit its body.
type sectionWriter struct {
	name    string
	present func(*Document) bool
	write   func(*Document, *rawdoc.Writer)
}

var sectionWriters = []sectionWriter{
	{sectionColorPalette,
		func(d *Document) bool { return d.ColorPalette != nil },
		func(d *Document, w *rawdoc.Writer) { writeColorPalette(w, sectionColorPalette, *d.ColorPalette) }},
	{sectionWarpSymbolPalette,
		func(d *Document) bool { return d.WarpSymbolPalette != nil },
		func(d *Document, w *rawdoc.Writer) { writeSymbolPalette(w, sectionWarpSymbolPalette, *d.WarpSymbolPalette) }},
	{sectionWeftSymbolPalette,
		func(d *Document) bool { return d.WeftSymbolPalette != nil },
		func(d *Document, w *rawdoc.Writer) { writeSymbolPalette(w, sectionWeftSymbolPalette, *d.WeftSymbolPalette) }},
	{sectionColorTable,
		func(d *Document) bool { return d.ColorTable != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionColorTable, d.ColorTable, formatColor) }},
	{sectionText,
		func(d *Document) bool { return d.Text != nil },
		func(d *Document, w *rawdoc.Writer) { writeText(w, sectionText, *d.Text) }},
	{sectionWeaving,
		func(d *Document) bool { return d.Weaving != nil },
		func(d *Document, w *rawdoc.Writer) { writeWeaving(w, sectionWeaving, *d.Weaving) }},
	{sectionWarp,
		func(d *Document) bool { return d.Warp != nil },
		func(d *Document, w *rawdoc.Writer) { writeThread(w, sectionWarp, *d.Warp) }},
	{sectionWeft,
		func(d *Document) bool { return d.Weft != nil },
		func(d *Document, w *rawdoc.Writer) { writeThread(w, sectionWeft, *d.Weft) }},
	{sectionNotes,
		func(d *Document) bool { return d.Notes != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionNotes, d.Notes, codec.FormatString) }},
	{sectionTieup,
		func(d *Document) bool { return d.Tieup != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionTieup, d.Tieup, formatSet[Shaft]) }},
	{sectionWarpSymbolTable,
		func(d *Document) bool { return d.WarpSymbolTable != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpSymbolTable, d.WarpSymbolTable, codec.FormatString) }},
	{sectionWeftSymbolTable,
		func(d *Document) bool { return d.WeftSymbolTable != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftSymbolTable, d.WeftSymbolTable, codec.FormatString) }},
	{sectionThreading,
		func(d *Document) bool { return d.Threading != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionThreading, d.Threading, formatSet[Shaft]) }},
	{sectionWarpThickness,
		func(d *Document) bool { return d.WarpThickness != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpThickness, d.WarpThickness, codec.FormatFloat) }},
	{sectionWarpThicknessZoom,
		func(d *Document) bool { return d.WarpThicknessZoom != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpThicknessZoom, d.WarpThicknessZoom, codec.FormatUint32) }},
	{sectionWarpSpacing,
		func(d *Document) bool { return d.WarpSpacing != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpSpacing, d.WarpSpacing, codec.FormatFloat) }},
	{sectionWarpSpacingZoom,
		func(d *Document) bool { return d.WarpSpacingZoom != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpSpacingZoom, d.WarpSpacingZoom, codec.FormatUint32) }},
	{sectionWarpColors,
		func(d *Document) bool { return d.WarpColors != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpColors, d.WarpColors, codec.FormatUint32) }},
	{sectionWarpSymbols,
		func(d *Document) bool { return d.WarpSymbols != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWarpSymbols, d.WarpSymbols, codec.FormatUint32) }},
	{sectionWeftThickness,
		func(d *Document) bool { return d.WeftThickness != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftThickness, d.WeftThickness, codec.FormatFloat) }},
	{sectionWeftThicknessZoom,
		func(d *Document) bool { return d.WeftThicknessZoom != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftThicknessZoom, d.WeftThicknessZoom, codec.FormatUint32) }},
	{sectionWeftSpacing,
		func(d *Document) bool { return d.WeftSpacing != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftSpacing, d.WeftSpacing, codec.FormatFloat) }},
	{sectionWeftSpacingZoom,
		func(d *Document) bool { return d.WeftSpacingZoom != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftSpacingZoom, d.WeftSpacingZoom, codec.FormatUint32) }},
	{sectionWeftColors,
		func(d *Document) bool { return d.WeftColors != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftColors, d.WeftColors, codec.FormatUint32) }},
	{sectionWeftSymbols,
		func(d *Document) bool { return d.WeftSymbols != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionWeftSymbols, d.WeftSymbols, codec.FormatUint32) }},
	{sectionTreadling,
		func(d *Document) bool { return d.Treadling != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionTreadling, d.Treadling, formatSet[Treadle]) }},
	{sectionLiftplan,
		func(d *Document) bool { return d.Liftplan != nil },
		func(d *Document, w *rawdoc.Writer) { writeTable(w, sectionLiftplan, d.Liftplan, formatSet[Shaft]) }},
}

// writeDocument serializes d in two phases: the header, then a CONTENTS
// flag for every section about to be emitted, then the section bodies.
// Presence is derived from the document itself, never from flags read
// earlier, so CONTENTS reflects exactly what follows it.
func writeDocument(d *Document, w *rawdoc.Writer) {
	writeHeader(w, d.Header)
	for _, s := range sectionWriters {
		if s.present(d) {
			w.Set(sectionContents, s.name, "true")
		}
	}
	for _, s := range sectionWriters {
		if s.present(d) {
			s.write(d, w)
		}
	}
}
