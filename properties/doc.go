// Package properties reads and writes Java-style .properties text as
// ir.Node value trees.
//
// # Parsing
//
// Each non-blank line of the form key=value contributes one leaf. Keys are
// dotted paths in which a bracketed index is shorthand for a dotted
// numeric segment, so these two lines address the same leaf:
//
//	servers[0].host=a.example.com
//	servers.0.host=a.example.com
//
// Intermediate containers are created on demand: an array when the next
// segment is numeric, an object otherwise. Values become numbers when they
// are decimal number literals, booleans when they are exactly true or
// false, and strings otherwise.
//
// A key given more than once accumulates its values into an array:
//
//	a=1
//	a=2
//	a=3
//
// parses as {"a": [1, 2, 3]}.
//
// Lines without exactly one unescaped '=' are skipped, as are comment lines
// starting with '#' or '!'. Result.Skipped records the line numbers of the
// skipped non-comment lines.
//
// # Escaping
//
// Values escape backslash, '=', newline and carriage return as \\, \=, \n
// and \r. Unescape inverts Escape exactly.
//
// # Encoding
//
// Flatten turns a tree back into key/value entries, joining object keys with
// '.' and appending [i] for array elements. Empty containers produce no
// entries. Non-finite floats, which YAML can express as .inf and .nan, are
// written as Infinity, -Infinity and NaN. Those are not decimal literals,
// so they read back as strings.
package properties
