// Package wif reads and writes WIF weaving drafts: the INI-like
// interchange format describing loom geometry, thread styling, and the
// threading, tieup, treadling, and liftplan relationships of a weave.
//
// Parse decodes a whole document at once and is all-or-nothing: any
// malformed field, missing required field, or cross-section inconsistency
// rejects the document with an error naming the section and field it
// arose in. Write re-serializes a Document deterministically, with table
// keys in ascending order and a CONTENTS section that reflects exactly
// the sections being written.
package wif

import (
	"fmt"
	"io"
	"os"

	"github.com/mdsherry/wif/internal/rawdoc"
)

// Parse decodes a WIF document from src.
func Parse(src string) (*Document, error) {
	raw, err := rawdoc.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse wif document: %w", err)
	}
	return assemble(raw)
}

// ParseFile decodes a WIF document from the file at path.
func ParseFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wif file %s: %w", path, err)
	}
	return Parse(string(src))
}

// Write serializes d to out. It fails only on the underlying stream's
// write errors.
func (d *Document) Write(out io.Writer) error {
	w := rawdoc.NewWriter()
	writeDocument(d, w)
	return w.WriteTo(out)
}

// WriteFile serializes d to the file at path.
func (d *Document) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wif file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close wif file %s: %w", path, closeErr)
		}
	}()
	return d.Write(f)
}
