// Package patch applies RFC 7386 merge patches and RFC 6902 JSON patches
// to value trees.
//
// Both kinds of patch work on the JSON rendering of the trees. Object keys
// in the result follow their order in the input document, with keys the
// patch introduces after them.
package patch
