package page

import (
	"strings"

	"aquarium-catalog/internal/domain/species"
)

// Ids fijos que comparten todas las páginas.
const (
	IDSearchInput    = "search-input"
	IDSearchButton   = "search-button"
	IDSearchOverlay  = "search-results-overlay"
	IDCloseSearch    = "close-search-results"
	IDResultsDisplay = "results-display"

	IDFishList            = "fish-list"
	IDFishDetailCard      = "fish-detail-card"
	IDFishDetailSubtitle  = "fish-detail-subtitle"
	IDPlantList           = "plant-list"
	IDPlantDetailCard     = "plant-detail-card"
	IDPlantDetailSubtitle = "plant-detail-subtitle"
)

// SearchIDs son los elementos del overlay de búsqueda.
var SearchIDs = []string{IDSearchInput, IDSearchButton, IDSearchOverlay, IDCloseSearch, IDResultsDisplay}

// View identifica cuál de los loaders corre en una página.
type View int

const (
	ViewNone View = iota
	ViewFishList
	ViewFishDetail
	ViewPlantList
	ViewPlantDetail
)

// dispatchOrder es la prioridad cuando hay que detectar la vista por ids.
var dispatchOrder = []View{ViewFishList, ViewFishDetail, ViewPlantList, ViewPlantDetail}

func (v View) String() string {
	switch v {
	case ViewFishList:
		return "fish-list"
	case ViewFishDetail:
		return "fish-detail"
	case ViewPlantList:
		return "plant-list"
	case ViewPlantDetail:
		return "plant-detail"
	default:
		return "none"
	}
}

// ParseView acepta los nombres de String(); ok=false si no reconoce.
func ParseView(s string) (View, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return ViewNone, true
	}
	for _, v := range dispatchOrder {
		if v.String() == s {
			return v, true
		}
	}
	return ViewNone, false
}

func (v View) Kind() species.Kind {
	switch v {
	case ViewPlantList, ViewPlantDetail:
		return species.KindPlant
	case ViewFishList, ViewFishDetail:
		return species.KindFish
	default:
		return ""
	}
}

// ListView y DetailView son las vistas de cada familia.
func ListView(k species.Kind) View {
	if k == species.KindPlant {
		return ViewPlantList
	}
	return ViewFishList
}

func DetailView(k species.Kind) View {
	if k == species.KindPlant {
		return ViewPlantDetail
	}
	return ViewFishDetail
}

func (v View) IsList() bool   { return v == ViewFishList || v == ViewPlantList }
func (v View) IsDetail() bool { return v == ViewFishDetail || v == ViewPlantDetail }

// ContainerID es el id del elemento que llena el loader ("" para ViewNone).
func (v View) ContainerID() string {
	switch v {
	case ViewFishList:
		return IDFishList
	case ViewFishDetail:
		return IDFishDetailCard
	case ViewPlantList:
		return IDPlantList
	case ViewPlantDetail:
		return IDPlantDetailCard
	default:
		return ""
	}
}

// SubtitleID es el acompañante opcional de las vistas de detalle.
func (v View) SubtitleID() string {
	switch v {
	case ViewFishDetail:
		return IDFishDetailSubtitle
	case ViewPlantDetail:
		return IDPlantDetailSubtitle
	default:
		return ""
	}
}

// DetectView elige la vista según los ids presentes, en orden fijo:
// fish list, fish detail, plant list, plant detail. Sin ninguno => ViewNone.
func DetectView(ids ...string) View {
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[strings.TrimSpace(id)] = true
	}
	for _, v := range dispatchOrder {
		if present[v.ContainerID()] {
			return v
		}
	}
	return ViewNone
}
