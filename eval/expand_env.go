package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/properties"
)

// ExpandEnv replaces $[expr] references in the string leaves of node,
// evaluating each against the root of node. A string which is a single
// reference takes the type of its result. Other references are replaced
// by their properties rendering.
func ExpandEnv(node *ir.Node, env Env) error {
	root := node.Root()
	var leaves []*ir.Node
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y.Type == ir.StringType && strings.Contains(y.String, "$[") {
			leaves = append(leaves, y)
		}
		return true, nil
	})
	for _, y := range leaves {
		repl, err := expandNode(root, y.String, env)
		if err != nil {
			return fmt.Errorf("%w: at %q", err, y.Path())
		}
		parent, idx, field := y.Parent, y.ParentIndex, y.ParentField
		*y = *repl
		y.Parent, y.ParentIndex, y.ParentField = parent, idx, field
		for _, v := range y.Values {
			v.Parent = y
		}
		for _, f := range y.Fields {
			f.Parent = y
		}
	}
	return nil
}

func expandNode(root *ir.Node, s string, env Env) (*ir.Node, error) {
	refs, err := scanRefs(s)
	if err != nil {
		return nil, err
	}
	if len(refs) == 1 && refs[0].start == 0 && refs[0].end == len(s) {
		return Eval(root, refs[0].code, env)
	}
	res, err := ExpandString(root, s, env)
	if err != nil {
		return nil, err
	}
	return ir.FromString(res), nil
}

// ExpandString replaces each $[expr] reference in s by the rendering of
// its result evaluated against doc.
func ExpandString(doc *ir.Node, s string, env Env) (string, error) {
	refs, err := scanRefs(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	last := 0
	for _, r := range refs {
		b.WriteString(s[last:r.start])
		v, err := Eval(doc, r.code, env)
		if err != nil {
			return "", err
		}
		if v.Type.IsLeaf() {
			b.WriteString(properties.ScalarString(v))
		} else {
			b.WriteString(encode.MustString(v, encode.EncodeFormat(format.JSONFormat), encode.Indent(0)))
		}
		last = r.end
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

type ref struct {
	start, end int
	code       string
}

// scanRefs finds the $[...] references in s. Brackets inside a
// reference nest.
func scanRefs(s string) ([]ref, error) {
	var res []ref
	i := 0
	for {
		j := strings.Index(s[i:], "$[")
		if j < 0 {
			return res, nil
		}
		start := i + j
		depth := 0
		end := -1
		for k := start + 1; k < len(s); k++ {
			switch s[k] {
			case '[':
				depth++
			case ']':
				depth--
			}
			if depth == 0 {
				end = k + 1
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated reference in %q", ErrEval, s)
		}
		res = append(res, ref{start: start, end: end, code: strings.TrimSpace(s[start+2 : end-1])})
		i = end
	}
}
