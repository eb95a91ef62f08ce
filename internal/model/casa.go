package model

// Casa represents a property record from the external catalog.
// Amenity flags arrive as 0/1 integers from the feature service and are
// normalized to booleans at the scoring boundary via the Has* helpers.
type Casa struct {
	ObjectID          int64    `json:"OBJECTID"`
	Name              string   `json:"Name"`
	Banos             int      `json:"Banos"`
	Piezas            int      `json:"Piezas"`
	Garage            int      `json:"Garage"`
	Internet          int      `json:"Internet"`
	Amoblada          int      `json:"Amoblada"`
	Balcon            int      `json:"Balcon"`
	Asensor           int      `json:"Asensor"`
	Television        int      `json:"Television"`
	AreaM2            int      `json:"Area_m2"`
	Pisos             int      `json:"Pisos"`
	Precio            int      `json:"Precio"`
	HospitalCar       int      `json:"Hospital_Car"`
	HospitalFoot      int      `json:"Hospital_foot"`
	EscuelasCar       int      `json:"Escuelas_Car"`
	EscuelasFoot      int      `json:"Escuelas_foot"`
	ParquesCar        int      `json:"Parques_Car"`
	ParquesFoot       int      `json:"Parques_foot"`
	UniversidadesCar  int      `json:"Universidades_Car"`
	UniversidadesFoot int      `json:"Universidades_foot"`
	GlobalID          string   `json:"GlobalID"`
	Telefono          int64    `json:"Telefono"`
	Geometry          *Point   `json:"geometry,omitempty"`
}

// Point is an optional geographic coordinate in the catalog's spatial reference.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c *Casa) HasGarage() bool     { return c.Garage == 1 }
func (c *Casa) HasInternet() bool   { return c.Internet == 1 }
func (c *Casa) IsAmoblada() bool    { return c.Amoblada == 1 }
func (c *Casa) HasBalcon() bool     { return c.Balcon == 1 }
func (c *Casa) HasAsensor() bool    { return c.Asensor == 1 }
func (c *Casa) HasTelevision() bool { return c.Television == 1 }

// CasaMatch is a scored catalog entry. Matches holds the full-credit
// field descriptions, PartialMatches the tolerance-band ones; both are
// for display only and do not affect ranking.
type CasaMatch struct {
	Casa           Casa     `json:"casa"`
	Score          float64  `json:"score"`
	Matches        []string `json:"matches"`
	PartialMatches []string `json:"partial_matches"`
}
