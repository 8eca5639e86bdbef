package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"

	"github.com/expr-lang/expr"
)

var ErrEval = errors.New("eval error")

// Env holds extra variables for an expression. They shadow document
// fields of the same name.
type Env map[string]any

// DocVar is the variable bound to the whole document.
const DocVar = "doc"

func (e Env) forDoc(doc *ir.Node) map[string]any {
	res := map[string]any{}
	v := ir.ToAny(doc)
	if m, ok := v.(map[string]any); ok {
		maps.Copy(res, m)
	}
	res[DocVar] = v
	maps.Copy(res, e)
	return res
}

// Eval evaluates code against doc and returns the result as a node.
func Eval(doc *ir.Node, code string, env Env) (*ir.Node, error) {
	v, err := EvalAny(doc, code, env)
	if err != nil {
		return nil, err
	}
	return FromAny(v)
}

// EvalAny is Eval returning the plain Go result.
func EvalAny(doc *ir.Node, code string, env Env) (any, error) {
	vars := env.forDoc(doc)
	prg, err := expr.Compile(code, append(exprOpts(doc), expr.Env(vars))...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, code, err)
	}
	res, err := expr.Run(prg, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, code, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", code, res)
	}
	return res, nil
}

// FromAny converts an expression result to a node. Values without a
// direct conversion go through their JSON encoding.
func FromAny(v any) (*ir.Node, error) {
	res, err := ir.FromAny(v)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ir.ErrType) {
		return nil, err
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %T: %w", ErrEval, v, err)
	}
	return parse.Parse(d, parse.ParseJSON())
}
