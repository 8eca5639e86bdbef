// Package libdiff compares two value trees leaf by leaf.
//
// Leaves are scalars and empty containers, addressed by their dotted
// path. A leaf present on one side only is an insertion or deletion; a
// leaf whose value differs is a replacement, and replaced strings carry
// a character level diff.
package libdiff
