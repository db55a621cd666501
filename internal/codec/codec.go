// Package codec implements the lexical forms of individual WIF values:
// how a single typed value is read from and written back to its textual
// representation. Decoding is permissive where the format allows variants
// (boolean spellings, day padding); encoding always produces the canonical
// form, so encode(decode(x)) == x for canonical input.
package codec

import (
	"strconv"
	"strings"
	"time"

	wiferrors "github.com/mdsherry/wif/errors"
)

// dateLayoutIn accepts both "April 2, 1997" and "April 02, 1997";
// dateLayoutOut always zero-pads the day.
const (
	dateLayoutIn  = "January 2, 2006"
	dateLayoutOut = "January 02, 2006"
)

// Uint32 decodes a non-negative decimal integer.
func Uint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// FormatUint32 encodes v in decimal.
func FormatUint32(v uint32) (string, bool) {
	return strconv.FormatUint(uint64(v), 10), true
}

// Int decodes a decimal integer, used for palette entry counts.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// FormatInt encodes v in decimal.
func FormatInt(v int) (string, bool) {
	return strconv.Itoa(v), true
}

// Float decodes a decimal floating point value.
func Float(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatFloat encodes v in its shortest decimal form.
func FormatFloat(v float64) (string, bool) {
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

// String decodes a raw string value unchanged.
func String(s string) (string, error) {
	return s, nil
}

// FormatString encodes s unchanged.
func FormatString(s string) (string, bool) {
	return s, true
}

// Bool decodes the boolean spellings the WIF format allows,
// case-insensitively: true/on/yes/1 and false/off/no/0.
func Bool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	default:
		return false, &wiferrors.BoolError{Saw: s}
	}
}

// FormatBool encodes v as "true" or "false".
func FormatBool(v bool) (string, bool) {
	return strconv.FormatBool(v), true
}

// Date decodes a "Month DD, YYYY" date.
func Date(s string) (time.Time, error) {
	return time.Parse(dateLayoutIn, s)
}

// FormatDate encodes t as "Month DD, YYYY" with a zero-padded day.
func FormatDate(t time.Time) (string, bool) {
	return t.Format(dateLayoutOut), true
}

// List decodes a comma-separated sequence with parse applied to each part.
// The whole list fails if any part fails.
func List[T any](parse func(string) (T, error)) func(string) ([]T, error) {
	return func(s string) ([]T, error) {
		parts := strings.Split(s, ",")
		out := make([]T, 0, len(parts))
		for _, part := range parts {
			v, err := parse(part)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// FormatList encodes values comma-separated; the list is absent if any
// element encodes to absent.
func FormatList[T any](format func(T) (string, bool)) func([]T) (string, bool) {
	return func(values []T) (string, bool) {
		parts := make([]string, 0, len(values))
		for _, v := range values {
			text, ok := format(v)
			if !ok {
				return "", false
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, ","), true
	}
}
