// Package eval evaluates expr-lang expressions against value trees.
//
// The fields of an object document are variables of the expression and
// the whole document is available as doc:
//
//	eval.Eval(tree, `server.port + 1`, nil)
//	eval.Eval(tree, `getpath("list[0].name")`, nil)
//	eval.Eval(tree, `len(doc)`, nil)
//
// Besides the expr-lang builtins, expressions may call
//
//   - getpath(path): the value at a dotted path, or nil
//   - haspath(path): whether a value exists at a dotted path
//   - getenv(name): an environment variable
//
// ExpandEnv substitutes $[expr] references inside the strings of a tree.
package eval
