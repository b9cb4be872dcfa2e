package display

import (
	"log"
	"sort"
	"strings"
	"unicode"
)

// Sanitize maps arbitrary text onto the board's alphabet. Characters are
// uppercased; anything the board cannot show becomes a space. Newlines,
// carriage returns and tabs are layout characters and blank out silently;
// every other substituted character is logged once per distinct rune.
//
// The output always has the same rune length as the input, and the
// function is idempotent.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var dropped map[rune]struct{}

	for _, r := range text {
		u := unicode.ToUpper(r)
		if Supported(u) {
			b.WriteRune(u)
			continue
		}
		if r != '\n' && r != '\r' && r != '\t' {
			if dropped == nil {
				dropped = make(map[rune]struct{})
			}
			dropped[u] = struct{}{}
		}
		b.WriteRune(' ')
	}

	if len(dropped) > 0 {
		subs := make([]string, 0, len(dropped))
		for r := range dropped {
			subs = append(subs, string(r))
		}
		sort.Strings(subs)
		log.Printf("[WARN] display: substituted unsupported characters: %s", strings.Join(subs, " "))
	}
	return b.String()
}

// SanitizeLines sanitizes multi-line text line by line, keeping the line
// breaks so the board's row layout survives.
func SanitizeLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Sanitize(line)
	}
	return strings.Join(lines, "\n")
}
