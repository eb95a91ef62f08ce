package extractor

import "regexp"

const (
	roomUnit = `habitaciones?|habitaci[oó]n|piezas?|dormitorios?|cuartos?`
	bathUnit = `baños?|banos?`
)

// Four structural shapes, tried in priority order:
//  1. "en vez de X <unit> dame Y"            -> Y
//  2. "en vez de X dame Y <unit>"            -> the number adjacent to the unit
//  3. "dame/ahora/prefiero/mejor/quiero X <unit>"
//  4. "cambiar a X <unit>"
//
// then the plain shapes: bare "<n> <unit>", "solo <n> <unit>" and
// "mejor ... que tenga <n> <unit>".
func countRulesFor(unit string) []countRule {
	return []countRule{
		{regexp.MustCompile(`(?:en vez de|en lugar de)\s*(` + numberWord + `)\s*(?:` + unit + `)\s*(?:dame|quiero|prefiero|mejor|que sean?)\s*(` + numberWord + `)`), 2},
		{regexp.MustCompile(`(?:en vez de|en lugar de)\s*(` + numberWord + `)\s*(?:dame|quiero|prefiero|mejor)\s*(` + numberWord + `)\s*(?:` + unit + `)`), 2},
		{regexp.MustCompile(`(?:dame|ahora|prefiero|mejor|quiero)\s*(` + numberWord + `)\s*(?:` + unit + `)`), 1},
		{regexp.MustCompile(`cambiar?(?:\s+a)?\s*(` + numberWord + `)\s*(?:` + unit + `)`), 1},
		{regexp.MustCompile(`(?:^|\s)(` + numberWord + `)\s*(?:` + unit + `)`), 1},
		{regexp.MustCompile(`(?:solo|solamente|únicamente|nada más que)\s*(` + numberWord + `)\s*(?:` + unit + `)`), 1},
		{regexp.MustCompile(`mejor.*?(?:que\s+tenga|con)\s*(` + numberWord + `)\s*(?:` + unit + `)`), 1},
	}
}

var (
	roomRules = countRulesFor(roomUnit)
	bathRules = countRulesFor(bathUnit)
)

// Rooms extracts a desired room count, or nil when the utterance does
// not mention one.
func Rooms(text string) *int {
	return extractCount(text, roomRules)
}

// Bathrooms extracts a desired bathroom count.
func Bathrooms(text string) *int {
	return extractCount(text, bathRules)
}
