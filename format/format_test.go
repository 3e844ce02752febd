package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"j": JSONFormat, "json": JSONFormat, "y": YAMLFormat, "yaml": YAMLFormat} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || !f.IsYAML() {
		t.Errorf("UnmarshalText: %v %s", err, f)
	}
}
