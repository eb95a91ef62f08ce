package extractor

import "regexp"

// Amenity identifies one of the tracked boolean features.
type Amenity string

const (
	AmenityGarage     Amenity = "garage"
	AmenityInternet   Amenity = "internet"
	AmenityAmoblada   Amenity = "amoblada"
	AmenityBalcon     Amenity = "balcon"
	AmenityAsensor    Amenity = "asensor"
	AmenityTelevision Amenity = "television"
)

// Amenities lists every tracked amenity in a stable order.
var Amenities = []Amenity{
	AmenityGarage, AmenityInternet, AmenityAmoblada,
	AmenityBalcon, AmenityAsensor, AmenityTelevision,
}

type polarity struct {
	positive []*regexp.Regexp
	negative []*regexp.Regexp
}

// qualifier accepts the refinement prefixes before either polarity.
const qualifier = `(?:en vez de|en lugar de|ahora|dame|prefiero|mejor|quiero)\s*`

const wordEnd = `(?:[\s.,;!?]|$)`

var amenityPatterns = map[Amenity]polarity{
	AmenityGarage: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:con\s+garage|garage|que\s+tenga\s+garage)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:con\s*garage|garage|que\s*tenga\s*garage)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+garage|no\s+garage|que\s+no\s+tenga\s+garage)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*garage|no\s*garage|que\s*no\s*tenga\s*garage)`),
		},
	},
	AmenityInternet: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:con\s+internet|internet|que\s+tenga\s+internet)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:con\s*internet|internet)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+internet|no\s+internet|que\s+no\s+tenga\s+internet)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*internet|no\s*internet)`),
		},
	},
	AmenityAmoblada: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:amoblada|amueblada|con\s+muebles|que\s+tenga\s+muebles|que\s+esté\s+amoblada)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:amoblada|amueblada|con\s*muebles)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+amoblar|sin\s+amueblar|sin\s+muebles|no\s+amoblada|no\s+amueblada|que\s+no\s+esté\s+amoblada|que\s+no\s+tenga\s+muebles)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*amoblar|sin\s*amueblar|sin\s*muebles|no\s*amoblada|no\s*amueblada)`),
		},
	},
	AmenityBalcon: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:con\s+balcón|con\s+balcon|balcón|balcon|que\s+tenga\s+balcón)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:con\s*balcón|con\s*balcon|balcón|balcon)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+balcón|sin\s+balcon|no\s+balcón|no\s+balcon|que\s+no\s+tenga\s+balcón)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*balcón|sin\s*balcon|no\s*balcón|no\s*balcon)`),
		},
	},
	AmenityAsensor: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:con\s+ascensor|ascensor|que\s+tenga\s+ascensor)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:con\s*ascensor|ascensor)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+ascensor|no\s+ascensor|que\s+no\s+tenga\s+ascensor)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*ascensor|no\s*ascensor)`),
		},
	},
	AmenityTelevision: {
		positive: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:con\s+televisión|con\s+television|con\s+tv|televisión|television|tv|que\s+tenga\s+tv)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:con\s*televisión|con\s*television|con\s*tv|televisión|television|tv)`),
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`(?:^|\s)(?:sin\s+televisión|sin\s+television|sin\s+tv|no\s+televisión|no\s+television|no\s+tv|que\s+no\s+tenga\s+tv)` + wordEnd),
			regexp.MustCompile(qualifier + `(?:sin\s*televisión|sin\s*television|sin\s*tv|no\s*televisión|no\s*television|no\s*tv)`),
		},
	},
}

// Boolean reports the requested polarity for one amenity: true, false,
// or nil when the utterance does not mention it. Negative patterns are
// checked first since negated forms contain the positive ones.
func Boolean(text string, amenity Amenity) *bool {
	patterns, ok := amenityPatterns[amenity]
	if !ok {
		return nil
	}
	for _, re := range patterns.negative {
		if re.MatchString(text) {
			v := false
			return &v
		}
	}
	for _, re := range patterns.positive {
		if re.MatchString(text) {
			v := true
			return &v
		}
	}
	return nil
}
