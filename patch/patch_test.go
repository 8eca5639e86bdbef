package patch

import (
	"testing"

	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, js string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(js), parse.ParseJSON())
	require.NoError(t, err)
	return n
}

func compact(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeFormat(format.JSONFormat), encode.Indent(0))
}

func TestMerge(t *testing.T) {
	doc := node(t, `{"b":1,"a":{"y":2,"x":1},"l":[1,2]}`)
	p := node(t, `{"a":{"y":null,"z":3},"l":[3],"c":"new"}`)
	res, err := Merge(doc, p)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":{"x":1,"z":3},"l":[3],"c":"new"}`, compact(res))
	assert.Equal(t, `{"b":1,"a":{"y":2,"x":1},"l":[1,2]}`, compact(doc), "doc must not change")
}

func TestMergeAll(t *testing.T) {
	res, err := MergeAll(
		node(t, `{"server":{"host":"a","port":80}}`),
		node(t, `{"server":{"port":8080}}`),
		node(t, `{"debug":true,"server":{"host":null}}`),
	)
	require.NoError(t, err)
	assert.Equal(t, `{"server":{"port":8080},"debug":true}`, compact(res))

	_, err = MergeAll()
	assert.ErrorIs(t, err, ErrPatch)
}

func TestApply(t *testing.T) {
	doc := node(t, `{"z":1,"a":[1,2]}`)
	ops := node(t, `[
		{"op":"add","path":"/a/-","value":3},
		{"op":"replace","path":"/z","value":"s"},
		{"op":"add","path":"/new","value":{"deep":[true]}}
	]`)
	res, err := Apply(doc, ops)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"s","a":[1,2,3],"new":{"deep":[true]}}`, compact(res))
}

func TestApplyErrors(t *testing.T) {
	doc := node(t, `{"z":1}`)
	_, err := Apply(doc, node(t, `[{"op":"test","path":"/z","value":2}]`))
	assert.ErrorIs(t, err, ErrPatch)

	_, err = Apply(doc, node(t, `{"op":"add"}`))
	assert.ErrorIs(t, err, ErrPatch)

	_, err = Apply(doc, node(t, `[{"op":"remove","path":"/missing"}]`))
	assert.ErrorIs(t, err, ErrPatch)
}

func TestDiff(t *testing.T) {
	from := node(t, `{"a":1,"b":2,"n":{"x":1}}`)
	to := node(t, `{"a":1,"n":{"x":2},"c":3}`)
	d, err := Diff(from, to)
	require.NoError(t, err)
	assert.Equal(t, `{"n":{"x":2},"c":3,"b":null}`, compact(d))

	back, err := Merge(from, d)
	require.NoError(t, err)
	assert.True(t, ir.Equal(to, back), "merge of diff: %s", compact(back))
}

func TestOrderLike(t *testing.T) {
	res := node(t, `{"a":1,"m":{"q":1,"p":2},"z":[{"k":1,"j":2}]}`)
	ref := node(t, `{"z":[{"j":0,"k":0}],"m":{"p":0,"q":0}}`)
	orderLike(res, ref)
	assert.Equal(t, `{"z":[{"j":2,"k":1}],"m":{"p":2,"q":1},"a":1}`, compact(res))
	assert.Equal(t, "z[0].k", res.Values[0].Values[0].Values[1].Path())
}
