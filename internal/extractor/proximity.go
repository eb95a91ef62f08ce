package extractor

import (
	"regexp"

	"casafinder/internal/model"
)

type service struct {
	// noun matches the service mention inside a minutes constraint.
	noun string
	// near holds the generic "cerca de X" phrasings, highest priority first.
	near []*regexp.Regexp

	setNear    func(*model.SearchCriteria, *bool)
	setMinutes func(*model.SearchCriteria, *int, bool)
}

// The bare "hospital" mention is a deliberate lowest-priority catch-all
// the other services do not get.
var services = []service{
	{
		noun: `hospital`,
		near: []*regexp.Regexp{
			regexp.MustCompile(`cerca\s+(?:del?\s+)?hospital`),
			regexp.MustCompile(`próximo\s+al?\s+hospital`),
			regexp.MustCompile(`cerca\s+a\s+un\s+hospital`),
			regexp.MustCompile(`cerca\s+de\s+un\s+hospital`),
			regexp.MustCompile(`al?\s+lado\s+(?:del?\s+)?hospital`),
			regexp.MustCompile(`hospital\s+cercano`),
			regexp.MustCompile(`hospital`),
		},
		setNear: func(c *model.SearchCriteria, v *bool) { c.NearHospital = v },
		setMinutes: func(c *model.SearchCriteria, v *int, foot bool) {
			if foot {
				c.HospitalFoot = v
			} else {
				c.HospitalCar = v
			}
		},
	},
	{
		noun: `escuela|colegio`,
		near: []*regexp.Regexp{
			regexp.MustCompile(`cerca\s+(?:del?\s+)?(?:escuela|colegio)`),
			regexp.MustCompile(`próximo\s+al?\s+(?:escuela|colegio)`),
			regexp.MustCompile(`cerca\s+a\s+una?\s+(?:escuela|colegio)`),
			regexp.MustCompile(`cerca\s+de\s+(?:la\s+|una?\s+)?(?:escuela|colegio)`),
			regexp.MustCompile(`al?\s+lado\s+(?:del?\s+)?(?:escuela|colegio)`),
			regexp.MustCompile(`(?:escuela|colegio)\s+cercanos?`),
		},
		setNear: func(c *model.SearchCriteria, v *bool) { c.NearSchool = v },
		setMinutes: func(c *model.SearchCriteria, v *int, foot bool) {
			if foot {
				c.EscuelasFoot = v
			} else {
				c.EscuelasCar = v
			}
		},
	},
	{
		noun: `parque`,
		near: []*regexp.Regexp{
			regexp.MustCompile(`cerca\s+(?:del?\s+)?parque`),
			regexp.MustCompile(`próximo\s+al?\s+parque`),
			regexp.MustCompile(`cerca\s+a\s+un\s+parque`),
			regexp.MustCompile(`cerca\s+de\s+un\s+parque`),
			regexp.MustCompile(`al?\s+lado\s+(?:del?\s+)?parque`),
			regexp.MustCompile(`parque\s+cercano`),
		},
		setNear: func(c *model.SearchCriteria, v *bool) { c.NearPark = v },
		setMinutes: func(c *model.SearchCriteria, v *int, foot bool) {
			if foot {
				c.ParquesFoot = v
			} else {
				c.ParquesCar = v
			}
		},
	},
	{
		noun: `universidad`,
		near: []*regexp.Regexp{
			regexp.MustCompile(`cerca\s+(?:de\s+la?\s+)?universidad`),
			regexp.MustCompile(`próximo\s+a\s+la?\s+universidad`),
			regexp.MustCompile(`cerca\s+a\s+una?\s+universidad`),
			regexp.MustCompile(`al?\s+lado\s+(?:de\s+la?\s+)?universidad`),
			regexp.MustCompile(`universidad\s+cercana`),
		},
		setNear: func(c *model.SearchCriteria, v *bool) { c.NearUniversity = v },
		setMinutes: func(c *model.SearchCriteria, v *int, foot bool) {
			if foot {
				c.UniversidadesFoot = v
			} else {
				c.UniversidadesCar = v
			}
		},
	},
}

var (
	minutesBefore = `(?:a\s+)?(\d+)\s*min(?:utos)?\s*(?:del?\s+|de\s+la\s+|de\s+una?\s+|al?\s+|a\s+la\s+)?`
	minutesAfter  = `\s*a\s*(\d+)\s*min(?:utos)?`
	footModeRe    = regexp.MustCompile(`caminando|a\s+pie|andando`)
)

var minuteRules = buildMinuteRules()

type minuteRule struct {
	re    *regexp.Regexp
	svc   int
	group int
}

func buildMinuteRules() []minuteRule {
	var rules []minuteRule
	for i, s := range services {
		rules = append(rules,
			minuteRule{regexp.MustCompile(minutesBefore + `(?:` + s.noun + `)`), i, 1},
			minuteRule{regexp.MustCompile(`(?:` + s.noun + `)` + minutesAfter), i, 1},
		)
	}
	return rules
}

// Proximity extracts per-service constraints into patch. An explicit
// minutes constraint ("a 10 minutos del hospital") wins over the
// generic "cerca de" flag for the same service; travel mode defaults to
// car unless a walking phrase follows the mention.
func Proximity(text string, patch *model.SearchCriteria) {
	withMinutes := make(map[int]bool)
	for _, rule := range minuteRules {
		loc := rule.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		m := rule.re.FindStringSubmatch(text)
		n, ok := parseNumber(m[rule.group])
		if !ok {
			continue
		}
		foot := footModeRe.MatchString(tail(text, loc[1], 40))
		services[rule.svc].setMinutes(patch, &n, foot)
		withMinutes[rule.svc] = true
	}

	for i, s := range services {
		if withMinutes[i] {
			continue
		}
		for _, re := range s.near {
			if re.MatchString(text) {
				v := true
				s.setNear(patch, &v)
				break
			}
		}
	}
}

// tail returns up to n bytes of text starting at offset.
func tail(text string, offset, n int) string {
	if offset >= len(text) {
		return ""
	}
	end := offset + n
	if end > len(text) {
		end = len(text)
	}
	return text[offset:end]
}
