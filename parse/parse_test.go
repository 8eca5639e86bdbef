package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
)

type parseTest struct {
	in   string
	opts []ParseOption
	want any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, opts: []ParseOption{ParseJSON()}, want: nil},
		{in: `true`, opts: []ParseOption{ParseJSON()}, want: true},
		{in: `22`, opts: []ParseOption{ParseJSON()}, want: int64(22)},
		{in: `1e14`, opts: []ParseOption{ParseJSON()}, want: 1e14},
		{in: `"hello"`, opts: []ParseOption{ParseJSON()}, want: "hello"},
		{in: `[1, "a", [true]]`, opts: []ParseOption{ParseJSON()}, want: []any{int64(1), "a", []any{true}}},
		{
			in:   `{"a":{"b":1},"c":2}`,
			opts: []ParseOption{ParseJSON()},
			want: map[string]any{"a": map[string]any{"b": int64(1)}, "c": int64(2)},
		},
		{
			in:   "hi:\n  abc:\n    test: value\n",
			opts: []ParseOption{ParseYAML()},
			want: map[string]any{"hi": map[string]any{"abc": map[string]any{"test": "value"}}},
		},
		{
			in:   "a: [1, 2.5, x]\nb: {c: null, d: true}\n",
			opts: []ParseOption{ParseYAML()},
			want: map[string]any{
				"a": []any{int64(1), 2.5, "x"},
				"b": map[string]any{"c": nil, "d": true},
			},
		},
		{
			in:   "base: &b\n  x: 1\ncopy: *b\n",
			opts: []ParseOption{ParseYAML()},
			want: map[string]any{
				"base": map[string]any{"x": int64(1)},
				"copy": map[string]any{"x": int64(1)},
			},
		},
		{
			in:   "- -1\n- \"quoted\"\n- 1: one\n",
			opts: []ParseOption{ParseYAML()},
			want: []any{int64(-1), "quoted", map[string]any{"1": "one"}},
		},
		{in: "", opts: []ParseOption{ParseYAML()}, want: nil},
		{
			in:   "server.port = 8080",
			want: map[string]any{"server": map[string]any{"port": int64(8080)}},
		},
	}
	for _, pt := range pts {
		t.Run(FormatFromOpts(pt.opts...).String()+":"+pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in), pt.opts...)
			if err != nil {
				t.Fatalf("error parsing %q: %v", pt.in, err)
			}
			if diff := cmp.Diff(pt.want, ir.ToAny(node)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeyOrder(t *testing.T) {
	for _, pt := range []parseTest{
		{in: `{"z":1,"a":2,"m":3}`, opts: []ParseOption{ParseJSON()}},
		{in: "z: 1\na: 2\nm: 3\n", opts: []ParseOption{ParseYAML()}},
		{in: "z=1\na=2\nm=3", opts: []ParseOption{ParseProperties()}},
	} {
		node, err := Parse([]byte(pt.in), pt.opts...)
		if err != nil {
			t.Fatal(err)
		}
		var keys []string
		for _, f := range node.Fields {
			keys = append(keys, f.String)
		}
		if diff := cmp.Diff([]string{"z", "a", "m"}, keys); diff != "" {
			t.Errorf("%q: key order (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseJSONBigNumber(t *testing.T) {
	node, err := Parse([]byte(`12345678901234567890123`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if node.Int64 != nil || node.Float64 == nil {
		t.Errorf("expected float for large integer, got %+v", node)
	}
	node, err = Parse([]byte(`1e400`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if node.Number != "1e400" {
		t.Errorf("expected literal fallback, got %+v", node)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		in   string
		line int
	}{
		{in: "{\n  \"a\": 1,\n  \"b\" 2\n}", line: 3},
		{in: `{"a":1} {"b":2}`, line: 1},
		{in: `[1, 2`, line: 1},
		{in: ``, line: 1},
		{in: `{"a": tru}`, line: 1},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in), ParseJSON())
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not ErrParse", tt.in, err)
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("%q: %T is not a SyntaxError", tt.in, err)
			continue
		}
		if synErr.Format != format.JSONFormat {
			t.Errorf("%q: format %s", tt.in, synErr.Format)
		}
		if synErr.Line != tt.line {
			t.Errorf("%q: line %d, want %d (%v)", tt.in, synErr.Line, tt.line, err)
		}
		if synErr.Column < 1 {
			t.Errorf("%q: column %d", tt.in, synErr.Column)
		}
	}
}

func TestParseYAMLError(t *testing.T) {
	_, err := Parse([]byte("a: [1, 2\nb: c\n"), ParseYAML())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("%v is not ErrParse", err)
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) || synErr.Format != format.YAMLFormat {
		t.Errorf("unexpected error %#v", err)
	}
}

func TestLineCol(t *testing.T) {
	d := []byte("ab\ncd\n")
	for off, want := range map[int64][2]int{0: {1, 1}, 2: {1, 3}, 3: {2, 1}, 4: {2, 2}, 100: {3, 1}} {
		line, col := lineCol(d, off)
		if line != want[0] || col != want[1] {
			t.Errorf("lineCol(%d) = %d,%d want %v", off, line, col, want)
		}
	}
}
