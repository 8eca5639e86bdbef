package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"properties": PropertiesFormat,
		"p":          PropertiesFormat,
		"YAML":       YAMLFormat,
		"yml":        YAMLFormat,
		"j":          JSONFormat,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("toml: got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"conf/application.properties": PropertiesFormat,
		"a.yaml":                      YAMLFormat,
		"b.yml":                       YAMLFormat,
		"/tmp/c.json":                 JSONFormat,
	}
	for in, want := range tests {
		got, err := FromPath(in)
		if err != nil || got != want {
			t.Errorf("FromPath(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := FromPath("Makefile"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("Makefile: got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
}
