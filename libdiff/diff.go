package libdiff

import (
	"github.com/signadot/confconv/ir"

	"github.com/samber/lo"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Delete Op = iota
	Insert
	Replace
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Change is one differing leaf. From is nil for an Insert and To is nil
// for a Delete. Text is set when a string is replaced by a string.
type Change struct {
	Op       Op
	Path     string
	From, To *ir.Node
	Text     []diffpatch.Diff
}

type leaf struct {
	path string
	node *ir.Node
}

// Diff returns the changes turning from into to. Deletions and
// replacements come in the order of from, insertions follow in the order
// of to.
func Diff(from, to *ir.Node) []Change {
	fromLeaves := leaves(from)
	toLeaves := leaves(to)
	toByPath := lo.KeyBy(toLeaves, func(l leaf) string { return l.path })
	fromByPath := lo.KeyBy(fromLeaves, func(l leaf) string { return l.path })

	var res []Change
	for _, fl := range fromLeaves {
		tl, ok := toByPath[fl.path]
		switch {
		case !ok:
			res = append(res, Change{Op: Delete, Path: fl.path, From: fl.node})
		case !ir.Equal(fl.node, tl.node):
			c := Change{Op: Replace, Path: fl.path, From: fl.node, To: tl.node}
			if fl.node.Type == ir.StringType && tl.node.Type == ir.StringType {
				c.Text = DiffString(fl.node.String, tl.node.String)
			}
			res = append(res, c)
		}
	}
	inserts := lo.Filter(toLeaves, func(l leaf, _ int) bool {
		_, ok := fromByPath[l.path]
		return !ok
	})
	for _, tl := range inserts {
		res = append(res, Change{Op: Insert, Path: tl.path, To: tl.node})
	}
	return res
}

// Equal reports whether from and to have the same leaves.
func Equal(from, to *ir.Node) bool {
	return len(Diff(from, to)) == 0
}

// Stats counts the changes of each kind.
func Stats(changes []Change) map[Op]int {
	return lo.CountValuesBy(changes, func(c Change) Op { return c.Op })
}

func leaves(node *ir.Node) []leaf {
	var res []leaf
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if y.Type.IsLeaf() || len(y.Values) == 0 {
			res = append(res, leaf{path: y.Path(), node: y})
			return false, nil
		}
		return true, nil
	})
	return res
}
