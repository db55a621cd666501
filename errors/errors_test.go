package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing field",
			err:  &MissingFieldError{Section: "WIF", Field: "Version"},
			want: "section [WIF] is missing required field 'Version'",
		},
		{
			name: "field parse wraps cause",
			err:  &FieldError{Section: "WEAVING", Field: "Shafts", Err: stderrors.New("bad number")},
			want: "error parsing [WEAVING].Shafts: bad number",
		},
		{
			name: "missing section",
			err:  &MissingSectionError{Section: "THREADING"},
			want: "section THREADING was indicated in CONTENTS, but could not be found",
		},
		{
			name: "table key",
			err:  &TableKeyError{Section: "TIEUP", Key: "banana"},
			want: "could not parse table key for section [TIEUP]: saw banana",
		},
		{
			name: "pair",
			err:  &PairError{Saw: "12"},
			want: "expected pair, but saw 12",
		},
		{
			name: "bool",
			err:  &BoolError{Saw: "maybe"},
			want: "expected boolean, but saw maybe",
		},
		{
			name: "liftplan mismatch",
			err:  ErrLiftplanMismatch,
			want: "lift plan does not match treadling and tieup",
		},
		{
			name: "color parts",
			err:  ErrColorParts,
			want: "colors must be three numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldErrorChainsContext(t *testing.T) {
	cause := &BoolError{Saw: "maybe"}
	err := InField("CONTENTS", "TIEUP", cause)

	var fieldErr *FieldError
	if !stderrors.As(err, &fieldErr) {
		t.Fatalf("InField did not produce a *FieldError: %v", err)
	}
	if fieldErr.Section != "CONTENTS" || fieldErr.Field != "TIEUP" {
		t.Fatalf("context = (%q, %q), want (CONTENTS, TIEUP)", fieldErr.Section, fieldErr.Field)
	}

	var boolErr *BoolError
	if !stderrors.As(err, &boolErr) {
		t.Fatalf("wrapped cause not reachable via errors.As: %v", err)
	}
	if got, want := err.Error(), "error parsing [CONTENTS].TIEUP: expected boolean, but saw maybe"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestInFieldNil(t *testing.T) {
	if err := InField("WIF", "Version", nil); err != nil {
		t.Fatalf("InField(nil) = %v, want nil", err)
	}
}
