package service

import (
	"strings"
	"testing"

	"casafinder/internal/model"
)

func TestScoreCasaExactMatch(t *testing.T) {
	casa := model.Casa{Name: "Casa 1", Piezas: 3, Garage: 1, Precio: 1800000}
	c := model.SearchCriteria{
		Piezas:    intp(3),
		Garage:    boolp(true),
		PrecioMax: intp(2000000),
	}

	score, matches, partial := ScoreCasa(casa, c)

	if score != 100 {
		t.Errorf("score = %.1f, want 100", score)
	}
	if len(matches) != 3 {
		t.Errorf("matches = %v, want 3 entries", matches)
	}
	if len(partial) != 0 {
		t.Errorf("partial = %v, want empty", partial)
	}
}

func TestScoreCasaEmptyCriteria(t *testing.T) {
	casa := model.Casa{Piezas: 3, Banos: 2}
	score, matches, partial := ScoreCasa(casa, model.SearchCriteria{})
	if score != 0 || len(matches) != 0 || len(partial) != 0 {
		t.Errorf("empty criteria: score=%.1f matches=%v partial=%v, want all zero", score, matches, partial)
	}
}

func TestScoreCasaNeighborBands(t *testing.T) {
	tests := []struct {
		name      string
		casa      model.Casa
		criteria  model.SearchCriteria
		wantScore float64
	}{
		{"banos off by one", model.Casa{Banos: 3}, model.SearchCriteria{Banos: intp(2)}, 8.0 / 15 * 100},
		{"banos off by two", model.Casa{Banos: 4}, model.SearchCriteria{Banos: intp(2)}, 4.0 / 15 * 100},
		{"banos off by three", model.Casa{Banos: 5}, model.SearchCriteria{Banos: intp(2)}, 0},
		{"pisos off by one", model.Casa{Pisos: 2}, model.SearchCriteria{Pisos: intp(3)}, 6.0 / 12 * 100},
		{"area within 10", model.Casa{AreaM2: 125}, model.SearchCriteria{Area: intp(120)}, 100},
		{"area within 30", model.Casa{AreaM2: 145}, model.SearchCriteria{Area: intp(120)}, 8.0 / 12 * 100},
		{"area within 50", model.Casa{AreaM2: 165}, model.SearchCriteria{Area: intp(120)}, 4.0 / 12 * 100},
		{"area beyond 50", model.Casa{AreaM2: 200}, model.SearchCriteria{Area: intp(120)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := ScoreCasa(tt.casa, tt.criteria)
			if diff := score - tt.wantScore; diff > 0.01 || diff < -0.01 {
				t.Errorf("score = %.2f, want %.2f", score, tt.wantScore)
			}
		})
	}
}

func TestScoreCasaAmenityMismatch(t *testing.T) {
	casa := model.Casa{Garage: 0}
	score, _, _ := ScoreCasa(casa, model.SearchCriteria{Garage: boolp(true)})
	if score != 0 {
		t.Errorf("score = %.1f, want 0", score)
	}

	// Explicit "sin garage" matches a property without one.
	score, matches, _ := ScoreCasa(casa, model.SearchCriteria{Garage: boolp(false)})
	if score != 100 {
		t.Errorf("score = %.1f, want 100", score)
	}
	if len(matches) != 1 || matches[0] != "sin garage" {
		t.Errorf("matches = %v, want [sin garage]", matches)
	}
}

func TestScoreCasaPrice(t *testing.T) {
	tests := []struct {
		name       string
		precio     int
		criteria   model.SearchCriteria
		wantPoints float64
	}{
		{"inside range", 1500000, model.SearchCriteria{PrecioMin: intp(1000000), PrecioMax: intp(2000000)}, 20},
		{"over max within tolerance", 2100000, model.SearchCriteria{PrecioMax: intp(2000000)}, 12},
		{"over max beyond tolerance", 2300000, model.SearchCriteria{PrecioMax: intp(2000000)}, 0},
		{"under min within tolerance", 950000, model.SearchCriteria{PrecioMin: intp(1000000)}, 12},
		{"under min beyond tolerance", 800000, model.SearchCriteria{PrecioMin: intp(1000000)}, 0},
		{"missing price", 0, model.SearchCriteria{PrecioMax: intp(2000000)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			casa := model.Casa{Precio: tt.precio}
			score, _, _ := ScoreCasa(casa, tt.criteria)
			want := tt.wantPoints / 20 * 100
			if diff := score - want; diff > 0.01 || diff < -0.01 {
				t.Errorf("score = %.2f, want %.2f", score, want)
			}
		})
	}
}

func TestScoreCasaTravelBands(t *testing.T) {
	tests := []struct {
		name       string
		casa       model.Casa
		criteria   model.SearchCriteria
		wantPoints float64
	}{
		{"car within limit", model.Casa{HospitalCar: 8}, model.SearchCriteria{HospitalCar: intp(10)}, 8},
		{"car within slack", model.Casa{HospitalCar: 14}, model.SearchCriteria{HospitalCar: intp(10)}, 5},
		{"car within wide slack", model.Casa{HospitalCar: 19}, model.SearchCriteria{HospitalCar: intp(10)}, 2},
		{"car too far", model.Casa{HospitalCar: 25}, model.SearchCriteria{HospitalCar: intp(10)}, 0},
		{"foot wider slack", model.Casa{EscuelasFoot: 24}, model.SearchCriteria{EscuelasFoot: intp(15)}, 5},
		{"foot widest slack", model.Casa{EscuelasFoot: 33}, model.SearchCriteria{EscuelasFoot: intp(15)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _, _ := ScoreCasa(tt.casa, tt.criteria)
			want := tt.wantPoints / 8 * 100
			if diff := score - want; diff > 0.01 || diff < -0.01 {
				t.Errorf("score = %.2f, want %.2f", score, want)
			}
		})
	}
}

func TestScoreCasaNearBands(t *testing.T) {
	tests := []struct {
		carMinutes int
		wantPoints float64
	}{
		{8, 12},
		{14, 8},
		{22, 4},
		{30, 0},
	}
	for _, tt := range tests {
		casa := model.Casa{HospitalCar: tt.carMinutes}
		score, _, _ := ScoreCasa(casa, model.SearchCriteria{NearHospital: boolp(true)})
		want := tt.wantPoints / 12 * 100
		if diff := score - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("carMinutes=%d: score = %.2f, want %.2f", tt.carMinutes, score, want)
		}
	}
}

func TestScoreCasaMonotonicInDistance(t *testing.T) {
	c := model.SearchCriteria{Piezas: intp(3), Garage: boolp(true)}
	prev := -1.0
	for _, piezas := range []int{6, 5, 4, 3} {
		casa := model.Casa{Piezas: piezas, Garage: 1}
		score, _, _ := ScoreCasa(casa, c)
		if score < prev {
			t.Errorf("piezas=%d: score %.1f dropped below %.1f for a closer value", piezas, score, prev)
		}
		prev = score
	}
}

func TestScoreCasaAddingSatisfiedCriterionDoesNotLower(t *testing.T) {
	casa := model.Casa{Piezas: 3, Garage: 1, Banos: 2}
	base := model.SearchCriteria{Piezas: intp(3)}
	extended := model.SearchCriteria{Piezas: intp(3), Garage: boolp(true), Banos: intp(2)}

	baseScore, _, _ := ScoreCasa(casa, base)
	extScore, _, _ := ScoreCasa(casa, extended)
	if extScore < baseScore {
		t.Errorf("extended score %.1f < base score %.1f", extScore, baseScore)
	}
}

func TestRankMatchesThresholdOrderAndCap(t *testing.T) {
	c := model.SearchCriteria{Piezas: intp(3), Banos: intp(2)}

	perfect := model.Casa{ObjectID: 1, Name: "perfect", Piezas: 3, Banos: 2}
	near := model.Casa{ObjectID: 2, Name: "near", Piezas: 3, Banos: 3}   // (15+8)/30 = 76.7
	far := model.Casa{ObjectID: 3, Name: "far", Piezas: 6, Banos: 5}    // 0

	matches := RankMatches([]model.Casa{near, far, perfect}, c)

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Casa.ObjectID != 1 {
		t.Errorf("first match = %d, want perfect casa", matches[0].Casa.ObjectID)
	}
	if matches[1].Casa.ObjectID != 2 {
		t.Errorf("second match = %d, want near casa", matches[1].Casa.ObjectID)
	}
	if matches[0].Score != 100 {
		t.Errorf("top score = %.1f, want 100", matches[0].Score)
	}
}

func TestRankMatchesCapsResults(t *testing.T) {
	c := model.SearchCriteria{Piezas: intp(3)}
	casas := make([]model.Casa, 15)
	for i := range casas {
		casas[i] = model.Casa{ObjectID: int64(i + 1), Piezas: 3}
	}

	matches := RankMatches(casas, c)
	if len(matches) != MaxResults {
		t.Errorf("len(matches) = %d, want %d", len(matches), MaxResults)
	}
	// Equal scores keep catalog order.
	for i, m := range matches {
		if m.Casa.ObjectID != int64(i+1) {
			t.Errorf("matches[%d] = casa %d, want %d", i, m.Casa.ObjectID, i+1)
		}
	}
}

func TestRankMatchesPartialAnnotations(t *testing.T) {
	c := model.SearchCriteria{Piezas: intp(3), Banos: intp(2)}
	casa := model.Casa{ObjectID: 7, Piezas: 3, Banos: 3}

	matches := RankMatches([]model.Casa{casa}, c)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	m := matches[0]
	if len(m.Matches) != 1 || !strings.Contains(m.Matches[0], "habitaciones") {
		t.Errorf("Matches = %v, want the exact room match", m.Matches)
	}
	if len(m.PartialMatches) != 1 || !strings.Contains(m.PartialMatches[0], "cercano") {
		t.Errorf("PartialMatches = %v, want the tolerance-band bathroom entry", m.PartialMatches)
	}
}
