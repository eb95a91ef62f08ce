package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	floorsRe = regexp.MustCompile(`(?:^|\s)(` + numberWord + `)\s*(?:pisos?|niveles?|nivel)`)
	areaRe   = regexp.MustCompile(`(?:^|\s)(` + numberWord + `)\s*(?:m2|m²|metros?\s+cuadrados?)`)

	// Price literals may carry "." or "," as thousands separators.
	priceLit     = `(\d+(?:[.,]\d{3})*)`
	priceRangeRe = regexp.MustCompile(`entre\s*\$?` + priceLit + `\s*y\s*\$?` + priceLit)
	priceMaxRe   = regexp.MustCompile(`(?:hasta|máximo|max|menor que|<)\s*\$?` + priceLit)
	priceMinRe   = regexp.MustCompile(`(?:desde|mínimo|min|mayor que|>)\s*\$?` + priceLit)
)

// Floors extracts a desired floor count.
func Floors(text string) *int {
	if m := floorsRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseNumber(m[1]); ok {
			return &n
		}
	}
	return nil
}

// Area extracts a desired floor area in m².
func Area(text string) *int {
	if m := areaRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseNumber(m[1]); ok {
			return &n
		}
	}
	return nil
}

// PriceRange extracts the requested price bounds. An explicit
// "entre $X y $Y" wins; otherwise max-only ("hasta ...") and min-only
// ("desde ...") are detected independently.
func PriceRange(text string) (min, max *int) {
	if m := priceRangeRe.FindStringSubmatch(text); m != nil {
		lo := parsePriceLiteral(m[1])
		hi := parsePriceLiteral(m[2])
		return lo, hi
	}
	if m := priceMaxRe.FindStringSubmatch(text); m != nil {
		max = parsePriceLiteral(m[1])
	}
	if m := priceMinRe.FindStringSubmatch(text); m != nil {
		min = parsePriceLiteral(m[1])
	}
	return min, max
}

func parsePriceLiteral(lit string) *int {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(lit)
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &n
}
