package extractor

import (
	"regexp"

	"casafinder/internal/model"
)

// genericChangeRe is the bare "en vez de X (dame) Y" shape with no unit
// word attached to either number. The optional middle word absorbs a
// stray token between the old value and the verb.
var genericChangeRe = regexp.MustCompile(
	`(?:en vez de|en lugar de)\s*(` + numberWord + `)(?:\s*(\w+))?\s*(?:dame|quiero|prefiero|mejor|que sean?)\s*(` + numberWord + `)`)

var (
	roomContextRe = regexp.MustCompile(`habitacion|habitación|pieza|cuarto|dormitorio`)
	bathContextRe = regexp.MustCompile(`baño|bano`)
)

// GenericChange handles utterances where the room and bathroom
// extractors both came up empty but a bare "instead of X give me Y"
// is present. The target field is inferred from roughly 50 characters
// of surrounding context; when the context names neither unit, nothing
// is extracted.
func GenericChange(text string, patch *model.SearchCriteria) {
	if patch.Piezas != nil || patch.Banos != nil {
		return
	}
	loc := genericChangeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return
	}
	m := genericChangeRe.FindStringSubmatch(text)
	n, ok := parseNumber(m[3])
	if !ok {
		return
	}

	context := contextWindow(text, loc[0], loc[1], 50)
	switch {
	case roomContextRe.MatchString(context):
		patch.Piezas = &n
	case bathContextRe.MatchString(context):
		patch.Banos = &n
	}
}

func contextWindow(text string, start, end, n int) string {
	lo := start - n
	if lo < 0 {
		lo = 0
	}
	hi := end + n
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:start] + " " + text[end:hi]
}
