package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Write writes one line per change. A deletion is written as
// "- path: old", an insertion as "+ path: new" and a replacement as
// "~ path: old -> new".
//
// Replaced strings are shown as one quoted string with deletions in
// [-...-] and insertions in {+...+}, or in color when useColor is set.
func Write(w io.Writer, changes []Change, useColor bool) error {
	for i := range changes {
		if _, err := io.WriteString(w, Line(&changes[i], useColor)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func Line(c *Change, useColor bool) string {
	path := c.Path
	if path == "" {
		path = "$"
	}
	switch c.Op {
	case Delete:
		s := "- " + path + ": " + value(c.From)
		if useColor {
			return color.RedString("%s", s)
		}
		return s
	case Insert:
		s := "+ " + path + ": " + value(c.To)
		if useColor {
			return color.GreenString("%s", s)
		}
		return s
	}
	head := "~ " + path + ": "
	if useColor {
		head = color.YellowString("%s", head)
	}
	if c.Text != nil {
		return head + textDiff(c.Text, useColor)
	}
	return head + value(c.From) + " -> " + value(c.To)
}

func value(node *ir.Node) string {
	return encode.MustString(node, encode.EncodeFormat(format.JSONFormat), encode.Indent(0))
}

func textDiff(diffs []diffpatch.Diff, useColor bool) string {
	if useColor {
		return `"` + diffpatch.New().DiffPrettyText(diffs) + `"`
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, d := range diffs {
		text := quoteInner(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s-]", text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(&b, "{+%s+}", text)
		default:
			b.WriteString(text)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteInner escapes s as inside a JSON string.
func quoteInner(s string) string {
	q := value(ir.FromString(s))
	return q[1 : len(q)-1]
}
