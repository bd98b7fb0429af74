package species

import (
	"bytes"
	"encoding/json"
)

// Kind define las familias de especies del catálogo.
type Kind string

const (
	KindFish  Kind = "fish"
	KindPlant Kind = "plant"
)

// Kinds en el orden en que se muestran en la navegación.
var Kinds = []Kind{KindFish, KindPlant}

// Noun devuelve el nombre en minúsculas ("fish", "plant").
func (k Kind) Noun() string { return string(k) }

// Label devuelve el nombre capitalizado para títulos y mensajes.
func (k Kind) Label() string {
	switch k {
	case KindFish:
		return "Fish"
	case KindPlant:
		return "Plant"
	default:
		return string(k)
	}
}

// Icon es el placeholder cuando la especie no trae imagen.
func (k Kind) Icon() string {
	if k == KindPlant {
		return "🌿"
	}
	return "🐠"
}

func (k Kind) Valid() bool {
	return k == KindFish || k == KindPlant
}

// Text es un campo que la API puede mandar como string, número, bool o null.
// Se conserva su forma textual tal cual llegó.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	// números y booleanos: texto crudo
	*t = Text(b)
	return nil
}

func (t Text) String() string { return string(t) }

// Summary es el registro que devuelven los listados (/api/fishes, /api/plants)
// y el campo data de una búsqueda.
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`

	// Solo peces
	Diet string `json:"diet,omitempty"`
	// Solo plantas
	CareLevel string `json:"care_level,omitempty"`
}

// Fish es el detalle completo de una especie de pez.
type Fish struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	ImageURL             string `json:"image_url,omitempty"`
	HabitatTemp          Text   `json:"habitat_temp"`
	HabitatPH            Text   `json:"habitat_ph"`
	Diet                 string `json:"diet"`
	Compatibility        string `json:"compatibility"`
	MinTankSizeGal       Text   `json:"min_tank_size_gal"`
	PlantNeeds           string `json:"plant_needs"`
	FilterRecommendation string `json:"filter_recommendation"`
}

// Plant es el detalle completo de una especie de planta.
type Plant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	CareLevel   string `json:"care_level"`
	Lighting    string `json:"lighting"`
	CO2Needed   Text   `json:"co2_needed"`
	Placement   string `json:"placement"`
	GrowthRate  string `json:"growth_rate"`
}

// ResultType es el discriminador de SearchResult.type.
type ResultType string

const (
	ResultFish  ResultType = "fish_species"
	ResultPlant ResultType = "plant_species"
	ResultError ResultType = "error"
)

// Kind mapea el tipo de resultado a la familia; ok=false si no es una especie.
func (t ResultType) Kind() (Kind, bool) {
	switch t {
	case ResultFish:
		return KindFish, true
	case ResultPlant:
		return KindPlant, true
	default:
		return "", false
	}
}

// SearchResult es la respuesta de POST /api/search.
type SearchResult struct {
	Type    ResultType `json:"type"`
	Data    *Summary   `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}
