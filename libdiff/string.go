package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a line diff from "from" to "to", with removed lines
// prefixed by '-', added lines by '+' and common lines by ' '.  It
// returns "" when the texts are equal.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var buf strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix + ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}
