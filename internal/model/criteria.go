package model

// SearchCriteria is a sparse set of user-desired constraints collected
// across one or more chat turns. Every field is optional: nil means
// "unconstrained", which for the boolean amenities is distinct from an
// explicit false ("sin garage").
type SearchCriteria struct {
	Piezas *int `json:"piezas,omitempty"`
	Banos  *int `json:"banos,omitempty"`
	Pisos  *int `json:"pisos,omitempty"`
	Area   *int `json:"area,omitempty"`

	PrecioMin *int `json:"precio_min,omitempty"`
	PrecioMax *int `json:"precio_max,omitempty"`

	Garage     *bool `json:"garage,omitempty"`
	Internet   *bool `json:"internet,omitempty"`
	Amoblada   *bool `json:"amoblada,omitempty"`
	Balcon     *bool `json:"balcon,omitempty"`
	Asensor    *bool `json:"asensor,omitempty"`
	Television *bool `json:"television,omitempty"`

	// Explicit travel-time constraints, minutes by car / on foot.
	HospitalCar       *int `json:"hospital_car,omitempty"`
	HospitalFoot      *int `json:"hospital_foot,omitempty"`
	EscuelasCar       *int `json:"escuelas_car,omitempty"`
	EscuelasFoot      *int `json:"escuelas_foot,omitempty"`
	ParquesCar        *int `json:"parques_car,omitempty"`
	ParquesFoot       *int `json:"parques_foot,omitempty"`
	UniversidadesCar  *int `json:"universidades_car,omitempty"`
	UniversidadesFoot *int `json:"universidades_foot,omitempty"`

	// Generic "cerca de X" flags, lower priority than the minute
	// constraints above.
	NearHospital   *bool `json:"near_hospital,omitempty"`
	NearSchool     *bool `json:"near_school,omitempty"`
	NearPark       *bool `json:"near_park,omitempty"`
	NearUniversity *bool `json:"near_university,omitempty"`
}

// IsEmpty reports whether no field is populated. An empty record is the
// "no constraint" identity value and must not trigger scoring.
func (c *SearchCriteria) IsEmpty() bool {
	return c.Piezas == nil && c.Banos == nil && c.Pisos == nil && c.Area == nil &&
		c.PrecioMin == nil && c.PrecioMax == nil &&
		c.Garage == nil && c.Internet == nil && c.Amoblada == nil &&
		c.Balcon == nil && c.Asensor == nil && c.Television == nil &&
		c.HospitalCar == nil && c.HospitalFoot == nil &&
		c.EscuelasCar == nil && c.EscuelasFoot == nil &&
		c.ParquesCar == nil && c.ParquesFoot == nil &&
		c.UniversidadesCar == nil && c.UniversidadesFoot == nil &&
		c.NearHospital == nil && c.NearSchool == nil &&
		c.NearPark == nil && c.NearUniversity == nil
}

// Overlay returns a copy of c with every populated field of patch
// written over it. Fields absent from patch keep their value in c; this
// is the per-field override contract the refinement merger relies on.
func (c SearchCriteria) Overlay(patch SearchCriteria) SearchCriteria {
	merged := c
	if patch.Piezas != nil {
		merged.Piezas = patch.Piezas
	}
	if patch.Banos != nil {
		merged.Banos = patch.Banos
	}
	if patch.Pisos != nil {
		merged.Pisos = patch.Pisos
	}
	if patch.Area != nil {
		merged.Area = patch.Area
	}
	if patch.PrecioMin != nil {
		merged.PrecioMin = patch.PrecioMin
	}
	if patch.PrecioMax != nil {
		merged.PrecioMax = patch.PrecioMax
	}
	if patch.Garage != nil {
		merged.Garage = patch.Garage
	}
	if patch.Internet != nil {
		merged.Internet = patch.Internet
	}
	if patch.Amoblada != nil {
		merged.Amoblada = patch.Amoblada
	}
	if patch.Balcon != nil {
		merged.Balcon = patch.Balcon
	}
	if patch.Asensor != nil {
		merged.Asensor = patch.Asensor
	}
	if patch.Television != nil {
		merged.Television = patch.Television
	}
	if patch.HospitalCar != nil {
		merged.HospitalCar = patch.HospitalCar
	}
	if patch.HospitalFoot != nil {
		merged.HospitalFoot = patch.HospitalFoot
	}
	if patch.EscuelasCar != nil {
		merged.EscuelasCar = patch.EscuelasCar
	}
	if patch.EscuelasFoot != nil {
		merged.EscuelasFoot = patch.EscuelasFoot
	}
	if patch.ParquesCar != nil {
		merged.ParquesCar = patch.ParquesCar
	}
	if patch.ParquesFoot != nil {
		merged.ParquesFoot = patch.ParquesFoot
	}
	if patch.UniversidadesCar != nil {
		merged.UniversidadesCar = patch.UniversidadesCar
	}
	if patch.UniversidadesFoot != nil {
		merged.UniversidadesFoot = patch.UniversidadesFoot
	}
	if patch.NearHospital != nil {
		merged.NearHospital = patch.NearHospital
	}
	if patch.NearSchool != nil {
		merged.NearSchool = patch.NearSchool
	}
	if patch.NearPark != nil {
		merged.NearPark = patch.NearPark
	}
	if patch.NearUniversity != nil {
		merged.NearUniversity = patch.NearUniversity
	}
	return merged
}
