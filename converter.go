package confconv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"
	"github.com/signadot/confconv/properties"
)

// DefaultSpaces is the indentation width of a new Converter.
const DefaultSpaces = 2

// Converter parses text in one format and renders it in another. It is
// not safe for concurrent use.
type Converter struct {
	input  string
	format format.Format
	spaces int
	tree   *ir.Node
}

type Option func(*Converter)

// WithSpaces sets the indentation width used for YAML and JSON output.
func WithSpaces(n int) Option {
	return func(c *Converter) { c.SetSpaces(n) }
}

func New(opts ...Option) *Converter {
	c := &Converter{spaces: DefaultSpaces}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) FromProperties(text string) *Converter {
	return c.From(format.PropertiesFormat, text)
}

func (c *Converter) FromJSON(text string) *Converter {
	return c.From(format.JSONFormat, text)
}

func (c *Converter) FromYAML(text string) *Converter {
	return c.From(format.YAMLFormat, text)
}

// From selects text in format f as the input. The value tree of a
// previous Convert is kept until the next successful Convert.
func (c *Converter) From(f format.Format, text string) *Converter {
	c.input = text
	c.format = f
	return c
}

func (c *Converter) Input() string {
	return c.input
}

func (c *Converter) InputFormat() format.Format {
	return c.format
}

// SetSpaces sets the indentation width. Negative widths are treated as 0,
// which gives compact JSON.
func (c *Converter) SetSpaces(n int) *Converter {
	c.spaces = max(n, 0)
	return c
}

func (c *Converter) Spaces() int {
	return c.spaces
}

// Convert parses the input into a fresh value tree. On error the tree of
// the last successful Convert is left in place.
func (c *Converter) Convert() error {
	if c.input == "" {
		return ErrEmptyInput
	}
	tree, err := parse.Parse([]byte(c.input), parse.ParseFormat(c.format))
	if err != nil {
		if debug.Convert() {
			debug.Logf("convert %s failed: %v", c.format, err)
		}
		return err
	}
	if debug.Convert() {
		debug.Logf("converted %s input: %v", c.format, tree)
	}
	c.tree = tree
	return nil
}

// ToYAML renders the tree as block YAML ending in a newline.
func (c *Converter) ToYAML() (string, error) {
	return c.encode(format.YAMLFormat)
}

// ToJSON renders the tree as JSON without a trailing newline. With 0
// spaces the output is compact.
func (c *Converter) ToJSON() (string, error) {
	s, err := c.encode(format.JSONFormat)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

// ToProperties renders the tree as key=value lines joined by newlines.
func (c *Converter) ToProperties() (string, error) {
	if c.tree == nil {
		return "", ErrEmptyOutput
	}
	return properties.Marshal(c.tree)
}

// To renders the tree in format f, as the matching To method does.
func (c *Converter) To(f format.Format) (string, error) {
	switch f {
	case format.PropertiesFormat:
		return c.ToProperties()
	case format.YAMLFormat:
		return c.ToYAML()
	case format.JSONFormat:
		return c.ToJSON()
	default:
		return "", fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// ToValue returns the tree built by the last successful Convert. The tree
// is shared with the Converter.
func (c *Converter) ToValue() (*ir.Node, error) {
	if c.tree == nil {
		return nil, ErrEmptyOutput
	}
	return c.tree, nil
}

// ToString has no rendering and always fails.
func (c *Converter) ToString() (string, error) {
	return "", fmt.Errorf("%w: ToString", ErrUnsupported)
}

func (c *Converter) encode(f format.Format) (string, error) {
	if c.tree == nil {
		return "", ErrEmptyOutput
	}
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(c.tree, buf, encode.EncodeFormat(f), encode.Indent(c.spaces))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ConvertText converts text from one format to another in one call.
func ConvertText(text string, from, to format.Format, opts ...Option) (string, error) {
	c := New(opts...).From(from, text)
	if err := c.Convert(); err != nil {
		return "", err
	}
	return c.To(to)
}
