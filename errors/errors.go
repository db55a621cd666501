// Package errors defines the typed error values surfaced by the wif codec.
//
// Every decode failure is wrapped with its (section, field) context before
// it propagates, so the top-level message always chains from the outermost
// location down to the root cause.
package errors

import (
	"errors"
	"fmt"
)

// ErrLiftplanMismatch indicates a document supplied both a liftplan and a
// treadling/tieup pair that do not compose to the same lift sequence.
var ErrLiftplanMismatch = errors.New("lift plan does not match treadling and tieup")

// ErrColorParts indicates a color value did not have exactly three
// comma-separated numeric parts.
var ErrColorParts = errors.New("colors must be three numbers")

// MissingFieldError indicates a required field is absent from its section.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("section [%s] is missing required field '%s'", e.Section, e.Field)
}

// FieldError wraps a decode failure with the section and field it occurred in.
type FieldError struct {
	Section string
	Field   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("error parsing [%s].%s: %v", e.Section, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InField attaches (section, field) context to err, or passes nil through.
func InField(section, field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Section: section, Field: field, Err: err}
}

// MissingSectionError indicates a section was flagged in CONTENTS but does
// not exist in the document.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("section %s was indicated in CONTENTS, but could not be found", e.Section)
}

// TableKeyError indicates a keyed-table entry whose key is not a valid
// identifier.
type TableKeyError struct {
	Section string
	Key     string
}

func (e *TableKeyError) Error() string {
	return fmt.Sprintf("could not parse table key for section [%s]: saw %s", e.Section, e.Key)
}

// PairError indicates a value that should have been a comma-separated pair.
type PairError struct {
	Saw string
}

func (e *PairError) Error() string {
	return fmt.Sprintf("expected pair, but saw %s", e.Saw)
}

// BoolError indicates a value that should have been a boolean.
type BoolError struct {
	Saw string
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("expected boolean, but saw %s", e.Saw)
}
