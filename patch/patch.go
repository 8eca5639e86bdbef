package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Merge applies patch to doc as an RFC 7386 merge patch. Null values in
// patch delete keys. Neither argument is modified.
func Merge(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Convert() {
		debug.Logf("merge patch %v into %v", patch, doc)
	}
	dDoc, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	dPatch, err := marshal(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(dDoc, dPatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out, doc, patch)
}

// MergeAll merges each of docs into the first, left to right.
func MergeAll(docs ...*ir.Node) (*ir.Node, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", ErrPatch)
	}
	res := docs[0]
	for _, d := range docs[1:] {
		var err error
		res, err = Merge(res, d)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Apply applies ops, an array of RFC 6902 operations, to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: json patch must be an array, got %s", ErrPatch, ops.Type)
	}
	dOps, err := marshal(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(dOps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	dDoc, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(dDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out, doc)
}

// Diff returns the merge patch which turns from into to.
func Diff(from, to *ir.Node) (*ir.Node, error) {
	dFrom, err := marshal(from)
	if err != nil {
		return nil, err
	}
	dTo, err := marshal(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(dFrom, dTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out, to)
}

func marshal(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.Indent(0))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshal(d []byte, refs ...*ir.Node) (*ir.Node, error) {
	res, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	orderLike(res, refs...)
	return res, nil
}
