package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"
	"github.com/signadot/confconv/properties"
)

const sampleJSON = `{"a":[1,{"b":"x"},[]],"e":{},"n":null,"t":true,"f":2.5}`

func mustParse(t *testing.T, in string, f format.Format) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in), parse.ParseFormat(f))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func encodeString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeYAML(t *testing.T) {
	tests := []struct {
		in     string
		indent int
		want   string
	}{
		{
			in:     `{"server":{"port":8080}}`,
			indent: 2,
			want:   "server:\n  port: 8080\n",
		},
		{
			in:     sampleJSON,
			indent: 2,
			want: `a:
  - 1
  -
    b: "x"
  - []
e: {}
n: null
t: true
f: 2.5
`,
		},
		{
			in:     `[[1,2],"s"]`,
			indent: 4,
			want:   "-\n    - 1\n    - 2\n- \"s\"\n",
		},
		{in: `"scalar"`, indent: 2, want: "\"scalar\"\n"},
		{in: `{}`, indent: 2, want: "{}\n"},
		{in: `{"a":{"b":1}}`, indent: 0, want: "a:\n b: 1\n"},
		{
			in:     `{"big":1e30,"small":1e-7,"neg":-1.25e-7,"lit":1e999}`,
			indent: 2,
			want:   "big: 1.0e+30\nsmall: 1.0e-07\nneg: -1.25e-07\nlit: 1.0e999\n",
		},
	}
	for _, tt := range tests {
		node := mustParse(t, tt.in, format.JSONFormat)
		got := encodeString(t, node, EncodeFormat(format.YAMLFormat), Indent(tt.indent))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	node := mustParse(t, sampleJSON, format.JSONFormat)
	got := encodeString(t, node, EncodeFormat(format.JSONFormat), Indent(0))
	if got != sampleJSON+"\n" {
		t.Errorf("compact: got %q", got)
	}
	want := `{
  "a": [
    1,
    {
      "b": "x"
    },
    []
  ],
  "e": {},
  "n": null,
  "t": true,
  "f": 2.5
}
`
	got = encodeString(t, node, EncodeFormat(format.JSONFormat))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("indented (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONStrings(t *testing.T) {
	node := ir.FromString("<a&b>\n\"q\"")
	got := encodeString(t, node, EncodeFormat(format.JSONFormat))
	if want := `"<a&b>\n\"q\""` + "\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	node := ir.FromString("caf\xe9")
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		got := encodeString(t, node, EncodeFormat(f))
		if want := `"caf\ufffd"` + "\n"; got != want {
			t.Errorf("%s: got %q want %q", f, got, want)
		}
	}
}

func TestYAMLKeys(t *testing.T) {
	for k, want := range map[string]string{
		"plain":   "plain",
		"a.b":     "a.b",
		"snake_x": "snake_x",
		"":        `""`,
		"a b":     `"a b"`,
		"true":    `"true"`,
		"Null":    `"Null"`,
		"1":       `"1"`,
		"-x":      `"-x"`,
		"a: b":    `"a: b"`,
		"#c":      `"#c"`,
		"~":       `"~"`,
	} {
		if got := yamlKey(k); got != want {
			t.Errorf("yamlKey(%q) = %s, want %s", k, got, want)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	docs := []string{
		sampleJSON,
		`{"a: b #c":"x # y","":"","true":"false","1":"1.5","~":"null","sp ":" lead"}`,
		`{"multi":"line1\nline2\r\n\ttab","uni":"héllo \u2028 \u0001","nest":[[[]],[{}]]}`,
		`[{"a":[{"b":[1,2]}]},-3,0.000001,12345678901234]`,
		`{"big":1.0e+30,"small":0.0000001,"neg":-2e-300,"mixed":[1e21,-1e-7]}`,
	}
	for _, doc := range docs {
		node := mustParse(t, doc, format.JSONFormat)
		y := encodeString(t, node, EncodeFormat(format.YAMLFormat))
		back := mustParse(t, y, format.YAMLFormat)
		if !ir.Equal(node, back) {
			t.Errorf("yaml round trip of %s via\n%s\ngave %s", doc, y, encodeString(t, back, EncodeFormat(format.JSONFormat), Indent(0)))
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	node := mustParse(t, "a:\n  - x\n  - {b: [1, 2.5, null]}\nc: true\n", format.YAMLFormat)
	for _, indent := range []int{0, 2, 3} {
		js := encodeString(t, node, EncodeFormat(format.JSONFormat), Indent(indent))
		back := mustParse(t, js, format.JSONFormat)
		if !ir.Equal(node, back) {
			t.Errorf("indent %d: json round trip failed:\n%s", indent, js)
		}
	}
}

func TestEncodeProperties(t *testing.T) {
	node := mustParse(t, `{"a":{"b":1},"c":2}`, format.JSONFormat)
	got := encodeString(t, node, EncodeFormat(format.PropertiesFormat))
	if got != "a.b=1\nc=2\n" {
		t.Errorf("got %q", got)
	}
	err := Encode(ir.FromInt(1), bytes.NewBuffer(nil), EncodeFormat(format.PropertiesFormat))
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, properties.ErrNotFlattenable) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	err := Encode(ir.Null(), bytes.NewBuffer(nil), Indent(-1))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("negative indent: %v", err)
	}
	err = Encode(ir.Null(), bytes.NewBuffer(nil), EncodeFormat(format.Format(42)))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("bad format: %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	mark := func(tag string) func(string, ...any) string {
		return func(s string, _ ...any) string { return "<" + tag + ">" + s }
	}
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: mark("k"),
			{Type: ir.NumberType, Attr: ValueColor}: mark("n"),
		},
	}
	node := mustParse(t, `{"a":1,"b":"s"}`, format.JSONFormat)
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat), EncodeColors(colors))
	if want := "<k>a: <n>1\n<k>b: \"s\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got = encodeString(t, node, EncodeFormat(format.JSONFormat), Indent(0), EncodeColors(colors))
	if want := `{<k>"a":<n>1,<k>"b":"s"}` + "\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	node := mustParse(t, `{"a":[1]}`, format.JSONFormat)
	if got := MustString(node); got != "a:\n  - 1" {
		t.Errorf("got %q", got)
	}
	if got := MustString(node, EncodeFormat(format.JSONFormat), Indent(0)); got != `{"a":[1]}` {
		t.Errorf("got %q", got)
	}
}
