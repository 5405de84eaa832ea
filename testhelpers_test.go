package hunspell

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// assertSuggestionsEqual compares two suggestion lists and, on mismatch,
// renders a human-readable diff instead of Go's default slice dump — mirrors
// google-kati's run_test.go, which reaches for diffmatchpatch specifically to
// make a failing text-output comparison legible rather than for anything the
// core itself needs.
func assertSuggestionsEqual(t *testing.T, want, got []string, msgAndArgs ...any) {
	t.Helper()
	wantLine := strings.Join(want, "\n")
	gotLine := strings.Join(got, "\n")
	if wantLine == gotLine {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(wantLine, gotLine, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	t.Errorf("suggestion list mismatch (want -> got):\n%s\n%v", dmp.DiffPrettyText(diffs), msgAndArgs)
}
