package patch

import (
	"github.com/signadot/confconv/ir"
)

// orderLike rearranges the object fields of res to follow the order of
// the same fields in refs, earlier refs first. Fields found in no ref
// keep their relative order at the end.
func orderLike(res *ir.Node, refs ...*ir.Node) {
	switch res.Type {
	case ir.ObjectType:
		orderObject(res, refs)
	case ir.ArrayType:
		for i, v := range res.Values {
			var sub []*ir.Node
			for _, ref := range refs {
				if ref.Type == ir.ArrayType && i < len(ref.Values) {
					sub = append(sub, ref.Values[i])
				}
			}
			orderLike(v, sub...)
		}
	}
}

func orderObject(res *ir.Node, refs []*ir.Node) {
	n := len(res.Fields)
	placed := make([]bool, n)
	index := make(map[string]int, n)
	for i, f := range res.Fields {
		index[f.String] = i
	}
	order := make([]int, 0, n)
	for _, ref := range refs {
		if ref.Type != ir.ObjectType {
			continue
		}
		for _, f := range ref.Fields {
			i, ok := index[f.String]
			if !ok || placed[i] {
				continue
			}
			placed[i] = true
			order = append(order, i)
		}
	}
	for i := range n {
		if !placed[i] {
			order = append(order, i)
		}
	}
	fields, values := res.Fields, res.Values
	res.Fields = make([]*ir.Node, 0, n)
	res.Values = make([]*ir.Node, 0, n)
	for _, i := range order {
		res.Set(fields[i].String, values[i])
	}
	for i, v := range res.Values {
		var sub []*ir.Node
		for _, ref := range refs {
			if ref.Type != ir.ObjectType {
				continue
			}
			if rv := ir.Get(ref, res.Fields[i].String); rv != nil {
				sub = append(sub, rv)
			}
		}
		orderLike(v, sub...)
	}
}
