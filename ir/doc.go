// Package ir provides the value tree shared by every configuration format
// confconv reads and writes.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field says which of the other
// fields carry the value:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Int64, Float64 or Number (see below)
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields and Values
//
// For ObjectType nodes, Fields[i] is the string-typed key for the value at
// Values[i]. Keys appear once and keep the order in which they were inserted,
// so encoding a parsed document reproduces its key order.
//
// Number values are placed under:
//   - Int64: if the literal is an integer fitting 64 bits
//   - Float64: otherwise, if it parses as a float
//   - Number: the literal text, when neither represents it exactly
//
// Every child carries a Parent pointer together with ParentIndex and, for
// object members, ParentField. Path uses these to report locations in the
// dotted syntax of properties keys:
//
//	node.Path() // e.g. "server.hosts[0].name"
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("port"), Val: ir.FromInt(8080)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromBool(true)})
//
// Containers may also be grown in place with Set and Append.
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
