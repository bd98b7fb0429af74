package page

import "strings"

// Route asocia un path servido con su vista. La vista es explícita: no se
// deduce inspeccionando el documento.
type Route struct {
	Path    string
	Title   string
	Heading string
	View    View
}

// File es el nombre de archivo del path (para export estático).
func (r Route) File() string {
	return strings.TrimPrefix(r.Path, "/")
}

var Routes = []Route{
	{Path: "/index.html", Title: "Aquarium Catalog", Heading: "Aquarium Species Catalog", View: ViewNone},
	{Path: "/fishes.html", Title: "Fish Species", Heading: "Fish Species", View: ViewFishList},
	{Path: "/fish_detail.html", Title: "Fish Details", Heading: "Fish Details", View: ViewFishDetail},
	{Path: "/plants.html", Title: "Plant Species", Heading: "Plant Species", View: ViewPlantList},
	{Path: "/plant_detail.html", Title: "Plant Details", Heading: "Plant Details", View: ViewPlantDetail},
}

// RouteFor devuelve la ruta de una vista (index para ViewNone).
func RouteFor(v View) Route {
	for _, r := range Routes {
		if r.View == v {
			return r
		}
	}
	return Routes[0]
}
