package pages

import (
	"context"
	"html/template"

	"golang.org/x/sync/errgroup"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/search"
	"aquarium-catalog/internal/domain/species"
	"aquarium-catalog/internal/render"
)

// Request describe una carga de página.
type Request struct {
	Route page.Route
	// Name es el parámetro name de las páginas de detalle.
	Name string
	// Search indica que vino q; Query es su valor crudo.
	Search bool
	Query  string
	// Self es el href de la página sin q (cerrar overlay). Vacío => se calcula.
	Self string
}

// SelfHref es la página actual sin la búsqueda, relativa.
func (req Request) SelfHref() string {
	if req.Self != "" {
		return req.Self
	}
	href := req.Route.File()
	if req.Route.View.IsDetail() && req.Name != "" {
		href += "?name=" + render.EncodeURIComponent(req.Name)
	}
	return href
}

// Build arma el documento de la ruta, corre su loader y, si vino q, la
// búsqueda. Ambos escriben en regiones disjuntas y corren en paralelo.
func (e *Env) Build(ctx context.Context, req Request) (*page.Document, render.PageData) {
	view := req.Route.View
	doc := page.ForView(view)

	ctrl, err := search.NewController(e.Catalog, e.Views, e.Log, doc)
	if err != nil {
		// ForView siempre incluye el overlay; no debería pasar
		e.Log.Warn("search overlay disabled", map[string]any{"error": err.Error()})
	}

	var g errgroup.Group
	g.Go(func() error {
		e.Run(ctx, view, doc, req.Name)
		return nil
	})
	if ctrl != nil && req.Search {
		g.Go(func() error {
			ctrl.Submit(ctx, req.Query)
			return nil
		})
	}
	_ = g.Wait()

	return doc, e.pageData(req, doc)
}

func (e *Env) pageData(req Request, doc *page.Document) render.PageData {
	view := req.Route.View

	data := render.PageData{
		Title:     req.Route.Title,
		Heading:   req.Route.Heading,
		AssetBase: e.AssetBase,
		Nav:       navFor(view),
		Search: render.SearchForm{
			Action: req.Route.File(),
			Query:  req.Query,
		},
	}
	if view.IsDetail() && req.Name != "" {
		data.Search.Hidden = append(data.Search.Hidden, render.Hidden{Name: "name", Value: req.Name})
	}

	if id := view.ContainerID(); id != "" {
		n := doc.Get(id)
		class := "detail-card"
		if view.IsList() {
			class = "list-container"
		}
		data.Main = &render.Region{ID: id, Class: class, Content: n.HTML()}
	}
	if id := view.SubtitleID(); id != "" {
		data.Subtitle = &render.Region{ID: id, Content: doc.Get(id).HTML()}
		if data.Subtitle.Content == "" {
			data.Subtitle.Content = template.HTML(template.HTMLEscapeString(req.Route.Heading))
		}
	}

	overlay := doc.Get(page.IDSearchOverlay)
	display := doc.Get(page.IDResultsDisplay)
	data.Overlay = render.Overlay{
		Class:        joinClass("search-overlay", overlay.ClassName()),
		CloseHref:    req.SelfHref(),
		Display:      display.HTML(),
		DisplayClass: display.ClassName(),
	}
	if data.Overlay.Display == "" {
		data.Overlay.Display = e.Views.Message(render.ClassPlaceholder, search.MsgIdle)
	}
	return data
}

func navFor(active page.View) []render.NavLink {
	links := []render.NavLink{{
		Label:  "Home",
		Href:   page.RouteFor(page.ViewNone).File(),
		Active: active == page.ViewNone,
	}}
	for _, k := range species.Kinds {
		links = append(links, render.NavLink{
			Label:  k.Label() + " Species",
			Href:   page.RouteFor(page.ListView(k)).File(),
			Active: active.Kind() == k,
		})
	}
	return links
}

func joinClass(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
