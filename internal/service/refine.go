package service

import (
	"regexp"
	"strconv"
	"strings"

	"casafinder/internal/extractor"
	"casafinder/internal/model"
)

// resetPhrases start a completely new search, discarding prior criteria.
var resetPhrases = []string{
	"nueva búsqueda",
	"empezar de nuevo",
	"buscar otra cosa",
	"cambiar todo",
	"olvidate de lo anterior",
	"olvídate de lo anterior",
	"nueva consulta",
	"empezar desde cero",
}

// IsNewSearch reports whether the utterance contains a reset phrase.
func IsNewSearch(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range resetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// RefineCriteria merges one conversational turn into the criteria
// accumulated so far. Pure function of its inputs: the caller owns the
// conversation state and passes the previous record back in.
//
// A reset phrase drops the prior record entirely. Otherwise every field
// the new utterance mentions overwrites the prior value and everything
// else survives, which is what lets users narrow a search across turns.
// Directional "de X a Y" phrasings are resolved against the prior
// record and take precedence over whatever the aggregator extracted for
// the same field.
func RefineCriteria(text string, previous *model.SearchCriteria) model.SearchCriteria {
	fresh := extractor.ExtractCriteria(text)
	if IsNewSearch(text) || previous == nil || previous.IsEmpty() {
		return fresh
	}

	merged := previous.Overlay(fresh)

	lower := strings.ToLower(text)
	applyDirectionalChanges(lower, previous, &merged)

	return merged
}

const (
	changePrefix    = `(?:en\s+vez\s+de|en\s+lugar\s+de|cambiar(?:\s+de)?|no\s+(?:quiero\s+)?)`
	changeConnector = `(?:\s+(?:sean?|que(?:\s+sean?)?|a|por|dame|quiero|prefiero|mejor))?`

	pisosUnits  = `pisos?|plantas?|niveles?`
	piezasUnits = `piezas?|habitaciones?|cuartos?|dormitorios?`
	banosUnits  = `baños?|banos?|wc`
	anyUnit     = pisosUnits + `|` + piezasUnits + `|` + banosUnits
)

type fieldRef struct {
	get func(*model.SearchCriteria) *int
	set func(*model.SearchCriteria, int)
}

var (
	fieldPiezas = fieldRef{
		get: func(c *model.SearchCriteria) *int { return c.Piezas },
		set: func(c *model.SearchCriteria, v int) { c.Piezas = &v },
	}
	fieldPisos = fieldRef{
		get: func(c *model.SearchCriteria) *int { return c.Pisos },
		set: func(c *model.SearchCriteria, v int) { c.Pisos = &v },
	}
	fieldBanos = fieldRef{
		get: func(c *model.SearchCriteria) *int { return c.Banos },
		set: func(c *model.SearchCriteria, v int) { c.Banos = &v },
	}
)

// bareChangeRe is the unit-less "en vez de 3 sean 2". The field it
// refers to is inferred by matching the old value against the prior
// criteria; a trailing unit word disqualifies the match since the
// unit-specific rules below own that case.
var bareChangeRe = regexp.MustCompile(changePrefix + `\s*(\d+)` + changeConnector + `\s*(\d+)`)

var trailingUnitRe = regexp.MustCompile(`^\s*(?:` + anyUnit + `)`)

type directionalRule struct {
	re    *regexp.Regexp
	field fieldRef
}

func unitChangeRule(units string, field fieldRef) directionalRule {
	return directionalRule{
		re: regexp.MustCompile(
			changePrefix + `\s*(\d+)(?:\s+(?:` + units + `))?` + changeConnector + `\s*(\d+)\s*(?:` + units + `)`),
		field: field,
	}
}

func modalChangeRule(units string, field fieldRef) directionalRule {
	return directionalRule{
		re: regexp.MustCompile(
			`(?:ahora\s+(?:quiero|prefiero)|mejor\s+(?:que\s+)?sean?|prefiero)\s*(\d+)\s*(?:` + units + `)`),
		field: field,
	}
}

var directionalRules = []directionalRule{
	unitChangeRule(pisosUnits, fieldPisos),
	unitChangeRule(piezasUnits, fieldPiezas),
	unitChangeRule(banosUnits, fieldBanos),
	modalChangeRule(pisosUnits, fieldPisos),
	modalChangeRule(piezasUnits, fieldPiezas),
	modalChangeRule(banosUnits, fieldBanos),
}

// ambiguity note: when the bare two-number phrase carries no unit and
// several prior fields hold the old value, the first field in
// (piezas, pisos, banos) order wins. Latent misattribution the grammar
// cannot resolve; a clarification prompt would be the correct fix.
var bareChangeFields = []fieldRef{fieldPiezas, fieldPisos, fieldBanos}

func applyDirectionalChanges(lower string, previous *model.SearchCriteria, merged *model.SearchCriteria) {
	if loc := bareChangeRe.FindStringSubmatchIndex(lower); loc != nil {
		m := bareChangeRe.FindStringSubmatch(lower)
		if !trailingUnitRe.MatchString(lower[loc[1]:]) {
			oldValue, _ := strconv.Atoi(m[1])
			newValue, _ := strconv.Atoi(m[2])
			for _, f := range bareChangeFields {
				if prior := f.get(previous); prior != nil && *prior == oldValue {
					f.set(merged, newValue)
					return
				}
			}
		}
	}

	for _, rule := range directionalRules {
		m := rule.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[len(m)-1]); err == nil {
			rule.field.set(merged, v)
		}
	}
}
