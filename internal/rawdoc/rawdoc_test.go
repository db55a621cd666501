package rawdoc

import (
	"strings"
	"testing"
)

const sample = `; a comment line
[WIF]
Version = 1.1
Source Program = test

[Color Table]
1 = 255,0,0
2 = 0,255,0
`

func TestLookupIsCaseInsensitive(t *testing.T) {
	doc, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		section string
		key     string
		want    string
	}{
		{"WIF", "Version", "1.1"},
		{"wif", "version", "1.1"},
		{"Wif", "VERSION", "1.1"},
		{"WIF", "Source Program", "test"},
		{"COLOR TABLE", "1", "255,0,0"},
	}
	for _, tt := range tests {
		got, ok := doc.Lookup(tt.section, tt.key)
		if !ok {
			t.Fatalf("Lookup(%q, %q) missing", tt.section, tt.key)
		}
		if got != tt.want {
			t.Fatalf("Lookup(%q, %q) = %q, want %q", tt.section, tt.key, got, tt.want)
		}
	}

	if _, ok := doc.Lookup("WIF", "Date"); ok {
		t.Fatal("Lookup of absent key reported present")
	}
	if _, ok := doc.Lookup("WEAVING", "Shafts"); ok {
		t.Fatal("Lookup in absent section reported present")
	}
}

func TestEntriesPreserveDocumentOrder(t *testing.T) {
	doc, err := Parse("[T]\n3 = c\n1 = a\n2 = b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entries, ok := doc.Entries("t")
	if !ok {
		t.Fatal("Entries reported section absent")
	}
	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if got, want := strings.Join(keys, ","), "3,1,2"; got != want {
		t.Fatalf("entry order = %s, want %s", got, want)
	}

	if _, ok := doc.Entries("missing"); ok {
		t.Fatal("Entries reported absent section present")
	}
}

func TestLeadingHashValueSurvives(t *testing.T) {
	// symbol values start with '#'; they must not be eaten as comments
	doc, err := Parse("[WARP]\nSymbol = #64\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := doc.Lookup("WARP", "Symbol")
	if !ok || got != "#64" {
		t.Fatalf("Lookup = %q, %v; want %q, true", got, ok, "#64")
	}
}

func TestWriterLeavesLeadingHashValueBare(t *testing.T) {
	// the serializer must not quote '#' or ';' as comment starters
	w := NewWriter()
	w.Set("WARP", "Symbol", "#64")
	w.Set("NOTES", "1", "twill; 2/2")

	var out strings.Builder
	if err := w.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	text := out.String()

	if !strings.Contains(text, "Symbol = #64") {
		t.Fatalf("symbol value not emitted verbatim:\n%s", text)
	}
	if strings.Contains(text, "`") {
		t.Fatalf("output contains quoting:\n%s", text)
	}

	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if v, ok := doc.Lookup("WARP", "Symbol"); !ok || v != "#64" {
		t.Fatalf("reparsed symbol = %q, %v; want %q, true", v, ok, "#64")
	}
	if v, ok := doc.Lookup("NOTES", "1"); !ok || v != "twill; 2/2" {
		t.Fatalf("reparsed note = %q, %v; want %q, true", v, ok, "twill; 2/2")
	}
}

func TestEnsureEmitsEmptySectionHeader(t *testing.T) {
	w := NewWriter()
	w.Set("WIF", "Version", "1.1")
	w.Ensure("TREADLING")

	var out strings.Builder
	if err := w.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	text := out.String()

	if !strings.Contains(text, "[TREADLING]") {
		t.Fatalf("empty section header missing:\n%s", text)
	}
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if entries, ok := doc.Entries("TREADLING"); !ok || len(entries) != 0 {
		t.Fatalf("reparsed section = %v, %v; want empty, true", entries, ok)
	}
}

func TestWriterEmitsCanonicalNamesInOrder(t *testing.T) {
	w := NewWriter()
	w.Set("WIF", "Version", "1.1")
	w.Set("CONTENTS", "COLOR TABLE", "true")
	w.Set("COLOR TABLE", "1", "0,0,999")

	var out strings.Builder
	if err := w.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	text := out.String()

	wifAt := strings.Index(text, "[WIF]")
	contentsAt := strings.Index(text, "[CONTENTS]")
	tableAt := strings.Index(text, "[COLOR TABLE]")
	if wifAt < 0 || contentsAt < 0 || tableAt < 0 {
		t.Fatalf("missing section header in output:\n%s", text)
	}
	if !(wifAt < contentsAt && contentsAt < tableAt) {
		t.Fatalf("sections out of order:\n%s", text)
	}

	// written text must read back to the same values
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if v, ok := doc.Lookup("COLOR TABLE", "1"); !ok || v != "0,0,999" {
		t.Fatalf("reparsed value = %q, %v", v, ok)
	}
}
