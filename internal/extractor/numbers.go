// Package extractor turns free-form Spanish utterances into sparse
// search criteria. Each extractor is a pure function over lowercased
// text with a priority-ordered pattern list; absence of a match is a
// nil result, never an error.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWord is the alternation accepted wherever a count is expected:
// digits or a spelled-out Spanish number from one to twenty. Longer
// words come before their prefixes so leftmost-first alternation picks
// the full word.
const numberWord = `\d+|uno|una|un|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez|` +
	`once|doce|trece|catorce|quince|dieciséis|dieciseis|diecisiete|dieciocho|diecinueve|veinte`

var wordToNumber = map[string]int{
	"un": 1, "uno": 1, "una": 1,
	"dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
	"once": 11, "doce": 12, "trece": 13, "catorce": 14, "quince": 15,
	"dieciseis": 16, "dieciséis": 16, "diecisiete": 17,
	"dieciocho": 18, "diecinueve": 19, "veinte": 20,
}

// parseNumber converts a captured token, digit or word, to its value.
func parseNumber(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	n, ok := wordToNumber[strings.ToLower(token)]
	return n, ok
}

// countRule pairs a pattern with the capture group holding the target
// count. Rules are tried in order; the first match wins, which is how
// "change to" phrasings take precedence over plain mentions.
type countRule struct {
	re    *regexp.Regexp
	group int
}

func extractCount(text string, rules []countRule) *int {
	for _, rule := range rules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, ok := parseNumber(m[rule.group]); ok {
			return &n
		}
	}
	return nil
}
