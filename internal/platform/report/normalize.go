package report

import (
	"regexp"
	"strings"
)

var (
	colonRun  = regexp.MustCompile(`:\s*:`)
	spaceRun  = regexp.MustCompile(`\s{2,}`)
	periodRun = regexp.MustCompile(`\.{2,}`)
)

// Normalize applies the lexical cleanup pass to one composed section text:
// a colon followed by whitespace and another colon collapses to one colon,
// runs of spaces collapse to one, spaces before periods and commas are
// dropped, runs of periods collapse to one, a comma directly before a period
// is dropped, and the result is trimmed. One rule's rewrite can expose fresh
// work for an earlier rule (",,." leaves ",." behind), so the pass iterates
// until the text stops changing; every rule shrinks the text, so it
// terminates. Normalize(Normalize(s)) == Normalize(s) for every input.
func Normalize(s string) string {
	for {
		next := normalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	if s == "" {
		return ""
	}
	s = colonRun.ReplaceAllString(s, ":")
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.ReplaceAll(s, " ,", ",")
	s = periodRun.ReplaceAllString(s, ".")
	s = strings.ReplaceAll(s, ",.", ".")
	return strings.TrimSpace(s)
}
