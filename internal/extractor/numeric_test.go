package extractor

import "testing"

func TestFloors(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"casa de 2 pisos", intp(2)},
		{"de dos niveles", intp(2)},
		{"un solo nivel", nil},
		{"3 habitaciones", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assertInt(t, Floors(tt.text), tt.want, "Floors")
		})
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"de 120 m2", intp(120)},
		{"unos 80 m²", intp(80)},
		{"200 metros cuadrados", intp(200)},
		{"sin área mencionada", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assertInt(t, Area(tt.text), tt.want, "Area")
		})
	}
}

func TestPriceRange(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin *int
		wantMax *int
	}{
		{"range", "entre $1.000.000 y $2.000.000", intp(1000000), intp(2000000)},
		{"range without symbol", "entre 500000 y 900000", intp(500000), intp(900000)},
		{"max only", "hasta $2.000.000", nil, intp(2000000)},
		{"max maximo", "máximo 1500000", nil, intp(1500000)},
		{"max menor que", "menor que 800000", nil, intp(800000)},
		{"min only", "desde $500.000", intp(500000), nil},
		{"min mayor que", "mayor que 300000", intp(300000), nil},
		{"comma separators", "hasta $1,200,000", nil, intp(1200000)},
		{"no mention", "busco casa con garage", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := PriceRange(tt.text)
			assertInt(t, min, tt.wantMin, "min")
			assertInt(t, max, tt.wantMax, "max")
		})
	}
}
