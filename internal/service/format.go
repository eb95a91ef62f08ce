package service

import (
	"fmt"
	"strings"

	"casafinder/internal/model"
)

// FormatCriteria renders the populated fields of a criteria record as a
// comma-separated human-readable summary.
func FormatCriteria(c model.SearchCriteria) string {
	var parts []string

	if c.Piezas != nil {
		parts = append(parts, fmt.Sprintf("%d habitaciones", *c.Piezas))
	}
	if c.Banos != nil {
		parts = append(parts, fmt.Sprintf("%d baños", *c.Banos))
	}
	if c.Pisos != nil {
		parts = append(parts, fmt.Sprintf("%d pisos", *c.Pisos))
	}
	if c.Area != nil {
		parts = append(parts, fmt.Sprintf("%d m²", *c.Area))
	}
	parts = appendBool(parts, c.Garage, "con garage", "sin garage")
	parts = appendBool(parts, c.Internet, "con internet", "sin internet")
	parts = appendBool(parts, c.Amoblada, "amoblada", "sin amoblar")
	parts = appendBool(parts, c.Balcon, "con balcón", "sin balcón")
	parts = appendBool(parts, c.Asensor, "con ascensor", "sin ascensor")
	parts = appendBool(parts, c.Television, "con TV", "sin TV")

	switch {
	case c.PrecioMin != nil && c.PrecioMax != nil:
		parts = append(parts, fmt.Sprintf("precio entre $%s y $%s", formatPrice(*c.PrecioMin), formatPrice(*c.PrecioMax)))
	case c.PrecioMin != nil:
		parts = append(parts, fmt.Sprintf("precio desde $%s", formatPrice(*c.PrecioMin)))
	case c.PrecioMax != nil:
		parts = append(parts, fmt.Sprintf("precio hasta $%s", formatPrice(*c.PrecioMax)))
	}

	parts = appendTravel(parts, c.HospitalCar, c.HospitalFoot, "hospital")
	parts = appendTravel(parts, c.EscuelasCar, c.EscuelasFoot, "escuela")
	parts = appendTravel(parts, c.ParquesCar, c.ParquesFoot, "parque")
	parts = appendTravel(parts, c.UniversidadesCar, c.UniversidadesFoot, "universidad")

	if c.NearHospital != nil && *c.NearHospital {
		parts = append(parts, "cerca de hospital")
	}
	if c.NearSchool != nil && *c.NearSchool {
		parts = append(parts, "cerca de escuela")
	}
	if c.NearPark != nil && *c.NearPark {
		parts = append(parts, "cerca de parque")
	}
	if c.NearUniversity != nil && *c.NearUniversity {
		parts = append(parts, "cerca de universidad")
	}

	return strings.Join(parts, ", ")
}

func appendBool(parts []string, v *bool, withText, withoutText string) []string {
	if v == nil {
		return parts
	}
	if *v {
		return append(parts, withText)
	}
	return append(parts, withoutText)
}

func appendTravel(parts []string, car, foot *int, label string) []string {
	if car != nil {
		parts = append(parts, fmt.Sprintf("%s a máx %d min en carro", label, *car))
	}
	if foot != nil {
		parts = append(parts, fmt.Sprintf("%s a máx %d min caminando", label, *foot))
	}
	return parts
}

// FormatMatches renders the ranked result list as numbered text for the
// chat transcript.
func FormatMatches(matches []model.CasaMatch) string {
	if len(matches) == 0 {
		return "No encontré casas que cumplan con tus criterios. Puedes probar con criterios más amplios o decir 'nueva búsqueda' para empezar desde cero."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d casa(s) que coinciden con tu búsqueda:\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(&b, "\n%d. %s — coincidencia %.0f%%\n", i+1, m.Casa.Name, m.Score)
		if len(m.Matches) > 0 {
			fmt.Fprintf(&b, "   Coincide: %s\n", strings.Join(m.Matches, ", "))
		}
		if len(m.PartialMatches) > 0 {
			fmt.Fprintf(&b, "   Parcial: %s\n", strings.Join(m.PartialMatches, ", "))
		}
	}
	return b.String()
}

// DescribeRefinement narrates which fields this turn changed relative
// to the previous criteria, for the chat reply.
func DescribeRefinement(previous, current model.SearchCriteria) string {
	var changes []string

	changes = appendIntChange(changes, previous.Piezas, current.Piezas, "habitaciones")
	changes = appendIntChange(changes, previous.Banos, current.Banos, "baños")
	changes = appendIntChange(changes, previous.Pisos, current.Pisos, "pisos")
	changes = appendIntChange(changes, previous.Area, current.Area, "m²")

	changes = appendBoolChange(changes, previous.Garage, current.Garage, "con garage", "sin garage")
	changes = appendBoolChange(changes, previous.Internet, current.Internet, "con internet", "sin internet")
	changes = appendBoolChange(changes, previous.Amoblada, current.Amoblada, "amoblada", "sin amoblar")
	changes = appendBoolChange(changes, previous.Balcon, current.Balcon, "con balcón", "sin balcón")
	changes = appendBoolChange(changes, previous.Asensor, current.Asensor, "con ascensor", "sin ascensor")
	changes = appendBoolChange(changes, previous.Television, current.Television, "con televisión", "sin televisión")

	if changedInt(previous.PrecioMin, current.PrecioMin) {
		changes = append(changes, fmt.Sprintf("precio mínimo: $%s", formatPrice(*current.PrecioMin)))
	}
	if changedInt(previous.PrecioMax, current.PrecioMax) {
		changes = append(changes, fmt.Sprintf("precio máximo: $%s", formatPrice(*current.PrecioMax)))
	}

	changes = appendNearChange(changes, previous.NearHospital, current.NearHospital, "cerca de hospital")
	changes = appendNearChange(changes, previous.NearSchool, current.NearSchool, "cerca de escuela")
	changes = appendNearChange(changes, previous.NearPark, current.NearPark, "cerca de parque")
	changes = appendNearChange(changes, previous.NearUniversity, current.NearUniversity, "cerca de universidad")

	if len(changes) == 0 {
		return "He refinado tu búsqueda con los nuevos criterios especificados."
	}
	return fmt.Sprintf("¡Perfecto! He refinado tu búsqueda agregando: %s.", strings.Join(changes, ", "))
}

func appendIntChange(changes []string, prev, cur *int, unit string) []string {
	if !changedInt(prev, cur) {
		return changes
	}
	if prev != nil {
		return append(changes, fmt.Sprintf("%d %s (cambio desde %d)", *cur, unit, *prev))
	}
	return append(changes, fmt.Sprintf("%d %s", *cur, unit))
}

func appendBoolChange(changes []string, prev, cur *bool, withText, withoutText string) []string {
	if cur == nil || (prev != nil && *prev == *cur) {
		return changes
	}
	if *cur {
		return append(changes, withText)
	}
	return append(changes, withoutText)
}

func appendNearChange(changes []string, prev, cur *bool, text string) []string {
	if cur == nil || !*cur || (prev != nil && *prev) {
		return changes
	}
	return append(changes, text)
}

func changedInt(prev, cur *int) bool {
	if cur == nil {
		return false
	}
	return prev == nil || *prev != *cur
}

// formatPrice inserts dots as thousands separators.
func formatPrice(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
