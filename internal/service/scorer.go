package service

import (
	"fmt"
	"sort"

	"casafinder/internal/model"
)

// Fixed scoring policy. The threshold and cap are not configurable per
// call; every weight is the maximum a populated field can contribute to
// the possible-points denominator.
const (
	MatchThreshold = 70.0
	MaxResults     = 10

	weightBanos      = 15
	weightPiezas     = 15
	weightPisos      = 12
	weightArea       = 12
	weightGarage     = 10
	weightInternet   = 10
	weightAmoblada   = 10
	weightBalcon     = 10
	weightAsensor    = 8
	weightTelevision = 6
	weightPrecio     = 20
	weightTravel     = 8
	weightNear       = 12
)

// tally accumulates (awarded, possible) pairs plus the display
// annotations for full-credit and tolerance-band fields.
type tally struct {
	awarded  int
	possible int
	matches  []string
	partial  []string
}

// add records one scored field. Full credit lands in matches, reduced
// credit in partial, zero credit only in the denominator.
func (t *tally) add(points, possible int, exact, partial string) {
	t.possible += possible
	t.awarded += points
	switch {
	case points == possible && exact != "":
		t.matches = append(t.matches, exact)
	case points > 0 && points < possible && partial != "":
		t.partial = append(t.partial, partial)
	}
}

func (t *tally) percent() float64 {
	if t.possible == 0 {
		return 0
	}
	return float64(t.awarded) / float64(t.possible) * 100
}

// ScoreCasa computes the normalized match percentage of one property
// against the criteria, together with the exact and partial match
// descriptions. Only populated fields contribute to either side of the
// ratio; an empty record scores 0 by definition.
func ScoreCasa(casa model.Casa, c model.SearchCriteria) (float64, []string, []string) {
	var t tally

	if c.Banos != nil {
		switch diff := abs(casa.Banos - *c.Banos); {
		case diff == 0:
			t.add(15, weightBanos, fmt.Sprintf("%d baños", *c.Banos), "")
		case diff == 1:
			t.add(8, weightBanos, "", fmt.Sprintf("%d baños (cercano a %d)", casa.Banos, *c.Banos))
		case diff == 2:
			t.add(4, weightBanos, "", fmt.Sprintf("%d baños (algo alejado de %d)", casa.Banos, *c.Banos))
		default:
			t.add(0, weightBanos, "", "")
		}
	}

	if c.Piezas != nil {
		switch diff := abs(casa.Piezas - *c.Piezas); {
		case diff == 0:
			t.add(15, weightPiezas, fmt.Sprintf("%d habitaciones", *c.Piezas), "")
		case diff == 1:
			t.add(8, weightPiezas, "", fmt.Sprintf("%d habitaciones (cercano a %d)", casa.Piezas, *c.Piezas))
		case diff == 2:
			t.add(4, weightPiezas, "", fmt.Sprintf("%d habitaciones (algo alejado de %d)", casa.Piezas, *c.Piezas))
		default:
			t.add(0, weightPiezas, "", "")
		}
	}

	if c.Pisos != nil {
		switch diff := abs(casa.Pisos - *c.Pisos); {
		case diff == 0:
			t.add(12, weightPisos, fmt.Sprintf("%d pisos", *c.Pisos), "")
		case diff == 1:
			t.add(6, weightPisos, "", fmt.Sprintf("%d pisos (cercano a %d)", casa.Pisos, *c.Pisos))
		default:
			t.add(0, weightPisos, "", "")
		}
	}

	if c.Area != nil {
		desc := fmt.Sprintf("%d m² (área solicitada: %d m²)", casa.AreaM2, *c.Area)
		switch diff := abs(casa.AreaM2 - *c.Area); {
		case diff <= 10:
			t.add(12, weightArea, desc, "")
		case diff <= 30:
			t.add(8, weightArea, "", desc)
		case diff <= 50:
			t.add(4, weightArea, "", desc)
		default:
			t.add(0, weightArea, "", "")
		}
	}

	scoreAmenity(&t, c.Garage, casa.HasGarage(), weightGarage, "con garage", "sin garage")
	scoreAmenity(&t, c.Internet, casa.HasInternet(), weightInternet, "con internet", "sin internet")
	scoreAmenity(&t, c.Amoblada, casa.IsAmoblada(), weightAmoblada, "amoblada", "sin amoblar")
	scoreAmenity(&t, c.Balcon, casa.HasBalcon(), weightBalcon, "con balcón", "sin balcón")
	scoreAmenity(&t, c.Asensor, casa.HasAsensor(), weightAsensor, "con ascensor", "sin ascensor")
	scoreAmenity(&t, c.Television, casa.HasTelevision(), weightTelevision, "con televisión", "sin televisión")

	scorePrice(&t, casa, c)

	scoreTravel(&t, c.HospitalCar, casa.HospitalCar, "hospital", false)
	scoreTravel(&t, c.HospitalFoot, casa.HospitalFoot, "hospital", true)
	scoreTravel(&t, c.EscuelasCar, casa.EscuelasCar, "escuela", false)
	scoreTravel(&t, c.EscuelasFoot, casa.EscuelasFoot, "escuela", true)
	scoreTravel(&t, c.ParquesCar, casa.ParquesCar, "parque", false)
	scoreTravel(&t, c.ParquesFoot, casa.ParquesFoot, "parque", true)
	scoreTravel(&t, c.UniversidadesCar, casa.UniversidadesCar, "universidad", false)
	scoreTravel(&t, c.UniversidadesFoot, casa.UniversidadesFoot, "universidad", true)

	scoreNear(&t, c.NearHospital, casa.HospitalCar, "del hospital")
	scoreNear(&t, c.NearSchool, casa.EscuelasCar, "de escuela")
	scoreNear(&t, c.NearPark, casa.ParquesCar, "de parque")
	scoreNear(&t, c.NearUniversity, casa.UniversidadesCar, "de universidad")

	return t.percent(), t.matches, t.partial
}

func scoreAmenity(t *tally, requested *bool, actual bool, weight int, withText, withoutText string) {
	if requested == nil {
		return
	}
	desc := withoutText
	if *requested {
		desc = withText
	}
	if actual == *requested {
		t.add(weight, weight, desc, "")
	} else {
		t.add(0, weight, "", "")
	}
}

// scorePrice gives full credit inside [min,max], reduced credit when
// outside by no more than 10% of the violated bound, zero otherwise.
// A property without a price scores zero but still counts toward the
// denominator.
func scorePrice(t *tally, casa model.Casa, c model.SearchCriteria) {
	if c.PrecioMin == nil && c.PrecioMax == nil {
		return
	}
	precio := casa.Precio
	if precio == 0 {
		t.add(0, weightPrecio, "", "")
		return
	}

	points := weightPrecio
	ok := true

	if c.PrecioMin != nil && precio < *c.PrecioMin {
		diff := *c.PrecioMin - precio
		if float64(diff) <= float64(*c.PrecioMin)*0.1 {
			points = 12
		} else {
			ok = false
		}
	}
	if c.PrecioMax != nil && precio > *c.PrecioMax {
		diff := precio - *c.PrecioMax
		if float64(diff) <= float64(*c.PrecioMax)*0.1 {
			if points > 12 {
				points = 12
			}
		} else {
			ok = false
		}
	}

	if !ok {
		t.add(0, weightPrecio, "", "")
		return
	}
	t.add(points, weightPrecio,
		fmt.Sprintf("precio: $%s", formatPrice(precio)),
		fmt.Sprintf("precio: $%s (cercano al rango)", formatPrice(precio)))
}

// scoreTravel bands an explicit minutes constraint. Walking gets a
// wider slack than driving: +10/+20 minutes instead of +5/+10.
func scoreTravel(t *tally, requested *int, actual int, label string, foot bool) {
	if requested == nil {
		return
	}
	mode := "en carro"
	slack1, slack2 := 5, 10
	if foot {
		mode = "caminando"
		slack1, slack2 = 10, 20
	}
	desc := fmt.Sprintf("%s a %d min %s", label, actual, mode)
	switch {
	case actual <= *requested:
		t.add(8, weightTravel, desc, "")
	case actual <= *requested+slack1:
		t.add(5, weightTravel, "", desc)
	case actual <= *requested+slack2:
		t.add(2, weightTravel, "", desc+" (algo lejos)")
	default:
		t.add(0, weightTravel, "", "")
	}
}

// scoreNear bands the generic "cerca de X" flag on driving time.
func scoreNear(t *tally, requested *bool, carMinutes int, label string) {
	if requested == nil || !*requested {
		return
	}
	switch {
	case carMinutes <= 10:
		t.add(12, weightNear, fmt.Sprintf("muy cerca %s (%d min en carro)", label, carMinutes), "")
	case carMinutes <= 15:
		t.add(8, weightNear, "", fmt.Sprintf("cerca %s (%d min en carro)", label, carMinutes))
	case carMinutes <= 25:
		t.add(4, weightNear, "", fmt.Sprintf("relativamente cerca %s (%d min en carro)", label, carMinutes))
	default:
		t.add(0, weightNear, "", "")
	}
}

// RankMatches scores the whole catalog, keeps entries at or above the
// threshold, sorts by score descending (catalog order breaks ties) and
// truncates to the result cap.
func RankMatches(casas []model.Casa, c model.SearchCriteria) []model.CasaMatch {
	matches := make([]model.CasaMatch, 0, len(casas))
	for _, casa := range casas {
		score, exact, partial := ScoreCasa(casa, c)
		if score < MatchThreshold {
			continue
		}
		matches = append(matches, model.CasaMatch{
			Casa:           casa,
			Score:          score,
			Matches:        exact,
			PartialMatches: partial,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
