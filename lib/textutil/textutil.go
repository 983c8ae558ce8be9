package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// §X color/format control sequences: one hex digit or one of the
// k-o/r flag letters, either case. A literal § not followed by a valid
// code is left alone.
var colorRegex = regexp.MustCompile(`§[0-9a-fA-Fk-orK-OR]`)

// StripColor removes every color/format control sequence. Idempotent.
func StripColor(text string) string {
	return colorRegex.ReplaceAllString(text, "")
}

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
