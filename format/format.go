package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

type Format int

const (
	PropertiesFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[string]Format{
	"p":          PropertiesFormat,
	"props":      PropertiesFormat,
	"properties": PropertiesFormat,
	"y":          YAMLFormat,
	"yml":        YAMLFormat,
	"yaml":       YAMLFormat,
	"j":          JSONFormat,
	"json":       JSONFormat,
}

func ParseFormat(v string) (Format, error) {
	f, ok := names[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format named by the suffix of path.
func FromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: no suffix on %q", ErrBadFormat, path)
	}
	return ParseFormat(ext)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PropertiesFormat:
		return []byte("properties"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool       { return f == JSONFormat }
func (f Format) IsProperties() bool { return f == PropertiesFormat }
func (f Format) IsYAML() bool       { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PropertiesFormat:
		return ".properties"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{PropertiesFormat, YAMLFormat, JSONFormat}
}

// Names returns the canonical names of all formats, for usage messages.
func Names() []string {
	return lo.Map(AllFormats(), func(f Format, _ int) string {
		return f.String()
	})
}
