// Package rawdoc is the boundary to the underlying INI representation of
// a WIF document. Reading yields a case-insensitive section/key lookup
// over the whole document; writing accumulates canonically named sections
// and keys in insertion order and serializes them in full. Nothing outside
// this package touches INI mechanics.
package rawdoc

import (
	"fmt"
	"io"

	ini "gopkg.in/ini.v1"
)

func init() {
	// Emit "Key = Value" without column-aligning the delimiters; aligned
	// output is valid WIF but no weaving program writes it that way.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Entry is one raw key/value line of a section.
type Entry struct {
	Key   string
	Value string
}

// Document is a parsed raw WIF document. Section and key lookups are
// case-insensitive, as the WIF format requires.
type Document struct {
	file *ini.File
}

// Parse reads an entire WIF document into a raw section/key map.
func Parse(src string) (*Document, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		Insensitive: true,
		// WIF symbol values start with '#'; only whole-line comments exist.
		IgnoreInlineComment: true,
	}, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("read sections: %w", err)
	}
	return &Document{file: f}, nil
}

// Lookup returns the raw value for key in section, if the line exists.
func (d *Document) Lookup(section, key string) (string, bool) {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).Value(), true
}

// Entries returns every raw key/value line of section in document order,
// or false if the section does not exist.
func (d *Document) Entries(section string) ([]Entry, bool) {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return nil, false
	}
	keys := sec.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k.Name(), Value: k.Value()})
	}
	return entries, true
}

// Writer accumulates sections and keys for serialization. Unlike the read
// side it is case-sensitive, so section and key names are emitted exactly
// as the canonical WIF spelling.
type Writer struct {
	file *ini.File
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	// Without IgnoreInlineComment the serializer backtick-quotes values
	// containing '#' or ';', mangling #NN symbol values on output.
	return &Writer{file: ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})}
}

// Ensure records section even when no keys are set for it, so its header
// line is still serialized.
func (w *Writer) Ensure(section string) {
	w.file.Section(section)
}

// Set records section.key = value. Sections and keys are written in the
// order they are first set.
func (w *Writer) Set(section, key, value string) {
	w.file.Section(section).Key(key).SetValue(value)
}

// WriteTo serializes every recorded section to out.
func (w *Writer) WriteTo(out io.Writer) error {
	if _, err := w.file.WriteTo(out); err != nil {
		return fmt.Errorf("write sections: %w", err)
	}
	return nil
}
