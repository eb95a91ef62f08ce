package extractor

import (
	"regexp"
	"strings"

	"casafinder/internal/model"
)

// ExtractCriteria runs every lexical extractor over a single utterance
// and assembles the partial criteria record. Deterministic, never
// fails; an unrecognized utterance yields the empty record. Extractors
// write disjoint fields, so population order only matters for the
// generic fallback, which fires when rooms and bathrooms both stayed
// empty.
func ExtractCriteria(text string) model.SearchCriteria {
	lower := strings.ToLower(text)
	var c model.SearchCriteria

	c.Piezas = Rooms(lower)
	c.Banos = Bathrooms(lower)
	c.Pisos = Floors(lower)
	c.Area = Area(lower)
	c.PrecioMin, c.PrecioMax = PriceRange(lower)

	c.Garage = Boolean(lower, AmenityGarage)
	c.Internet = Boolean(lower, AmenityInternet)
	c.Amoblada = Boolean(lower, AmenityAmoblada)
	c.Balcon = Boolean(lower, AmenityBalcon)
	c.Asensor = Boolean(lower, AmenityAsensor)
	c.Television = Boolean(lower, AmenityTelevision)

	Proximity(lower, &c)
	GenericChange(lower, &c)

	return c
}

var houseKeywords = []string{
	"casa", "casas", "vivienda", "hogar", "apartamento", "propiedad",
	"inmueble", "habitación", "habitaciones", "cuarto", "cuartos",
	"dormitorio", "dormitorios", "pieza", "piezas", "baño", "baños",
	"garage", "balcón", "amoblada", "amueblada", "con muebles",
	"sin muebles", "ascensor", "internet", "televisión", "tv",
	"pisos", "área", "metros", "m2", "m²",
	"busco", "necesito", "quiero", "me interesa", "mostrar", "encontrar",
	"precio", "pesos", "millones", "alquiler", "arriendo", "venta",
	"en vez de", "en lugar de", "cambiar", "cambio", "ahora", "mejor",
	"prefiero", "dame",
	"cerca", "cercano", "próximo", "hospital", "escuela", "parque",
	"universidad", "colegio",
}

var housePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(?:habitaciones?|cuartos?|dormitorios?|piezas?)`),
	regexp.MustCompile(`\d+\s*baños?`),
	regexp.MustCompile(`\d+\s*pisos?`),
	regexp.MustCompile(`\d+\s*(?:m2|m²|metros)`),
	regexp.MustCompile(`\$\d+(?:[.,]\d{3})*`),
	regexp.MustCompile(`(?:con|sin)\s+(?:garage|internet|balcón|ascensor|televisión)`),
	regexp.MustCompile(`cerca\s+(?:del?|de)\s+(?:hospital|escuela|universidad|parque)`),
}

// IsHouseQuery reports whether an utterance looks like a housing
// request at all, so the chat layer can route everything else to its
// general conversation path.
func IsHouseQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range houseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, re := range housePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
