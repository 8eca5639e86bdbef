package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a semantically cleaned up character diff of two
// strings. Multi-line strings are diffed line by line first.
func DiffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	return dmp.DiffCleanupSemantic(diffs)
}
