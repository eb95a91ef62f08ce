package extractor

import "testing"

func TestBoolean(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		amenity Amenity
		want    *bool
	}{
		{"con garage", "busco casa con garage", AmenityGarage, boolp(true)},
		{"bare garage", "garage y balcón", AmenityGarage, boolp(true)},
		{"sin garage", "quiero una casa sin garage", AmenityGarage, boolp(false)},
		{"que no tenga garage", "que no tenga garage", AmenityGarage, boolp(false)},
		{"unmentioned garage", "busco casa con 3 piezas", AmenityGarage, nil},
		{"con internet", "con internet por favor", AmenityInternet, boolp(true)},
		{"sin internet", "sin internet", AmenityInternet, boolp(false)},
		{"amoblada", "que esté amoblada", AmenityAmoblada, boolp(true)},
		{"amueblada variant", "una casa amueblada", AmenityAmoblada, boolp(true)},
		{"sin muebles", "la quiero sin muebles", AmenityAmoblada, boolp(false)},
		{"balcon accented", "con balcón", AmenityBalcon, boolp(true)},
		{"balcon unaccented", "con balcon grande", AmenityBalcon, boolp(true)},
		{"sin balcon", "sin balcón", AmenityBalcon, boolp(false)},
		{"ascensor", "que tenga ascensor", AmenityAsensor, boolp(true)},
		{"no ascensor", "no ascensor", AmenityAsensor, boolp(false)},
		{"tv", "con tv", AmenityTelevision, boolp(true)},
		{"sin television", "sin televisión", AmenityTelevision, boolp(false)},
		{"qualifier positive", "mejor con garage", AmenityGarage, boolp(true)},
		{"qualifier negative", "ahora sin garage", AmenityGarage, boolp(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boolean(tt.text, tt.amenity)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Boolean(%q, %s) = %v, want nil", tt.text, tt.amenity, *got)
				}
				return
			}
			if got == nil {
				t.Errorf("Boolean(%q, %s) = nil, want %v", tt.text, tt.amenity, *tt.want)
				return
			}
			if *got != *tt.want {
				t.Errorf("Boolean(%q, %s) = %v, want %v", tt.text, tt.amenity, *got, *tt.want)
			}
		})
	}
}

func TestBooleanNegativeWinsOverPositive(t *testing.T) {
	// "sin garage" contains the bare "garage" token, so the negative
	// patterns must be evaluated first.
	for _, text := range []string{"sin garage", "casa sin garage y con balcón"} {
		got := Boolean(text, AmenityGarage)
		if got == nil || *got {
			t.Errorf("Boolean(%q, garage) = %v, want false", text, got)
		}
	}
}
