package pages

import (
	"context"
	"errors"
	"html/template"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/species"
	"aquarium-catalog/internal/render"
)

func (e *Env) LoadFishList(ctx context.Context, doc *page.Document) {
	e.LoadList(ctx, species.KindFish, doc)
}

func (e *Env) LoadPlantList(ctx context.Context, doc *page.Document) {
	e.LoadList(ctx, species.KindPlant, doc)
}

func (e *Env) LoadFishDetail(ctx context.Context, doc *page.Document, name string) {
	e.LoadDetail(ctx, species.KindFish, doc, name)
}

func (e *Env) LoadPlantDetail(ctx context.Context, doc *page.Document, name string) {
	e.LoadDetail(ctx, species.KindPlant, doc, name)
}

// LoadList llena el contenedor del listado. Sin contenedor no hace nada.
// Lista vacía => placeholder; cualquier fallo => un único mensaje de error.
func (e *Env) LoadList(ctx context.Context, kind species.Kind, doc *page.Document) {
	view := page.ListView(kind)
	container := doc.Get(view.ContainerID())
	if container == nil {
		return
	}

	container.SetHTML(e.Views.Message(render.ClassLoading, msgLoadingList(kind)))

	items, err := e.Catalog.ListSpecies(ctx, kind)
	if err != nil {
		e.listFailed(container, view, kind, err)
		return
	}

	if len(items) == 0 {
		container.SetHTML(e.Views.Message(render.ClassPlaceholder, msgEmptyList(kind)))
		return
	}

	cards, err := e.Views.ListCards(kind, items)
	if err != nil {
		e.listFailed(container, view, kind, err)
		return
	}
	container.SetHTML(cards)
}

func (e *Env) listFailed(container *page.Node, view page.View, kind species.Kind, err error) {
	e.Log.Error("error loading species list", map[string]any{
		"view":  view.String(),
		"error": err.Error(),
	})
	container.SetHTML(e.Views.Message(render.ClassError, msgListFailed(kind, err)))
}

// LoadDetail llena la tarjeta de detalle para name.
// name vacío => error local y subtítulo "Error", sin request.
// El subtítulo toma el nombre antes de pedir el detalle.
func (e *Env) LoadDetail(ctx context.Context, kind species.Kind, doc *page.Document, name string) {
	view := page.DetailView(kind)
	card := doc.Get(view.ContainerID())
	if card == nil {
		return
	}
	subtitle := doc.Get(view.SubtitleID()) // opcional

	if name == "" {
		card.SetHTML(e.Views.Message(render.ClassError, msgNameMissing(kind)))
		if subtitle != nil {
			subtitle.SetText(SubtitleError)
		}
		return
	}

	card.SetHTML(e.Views.Message(render.ClassLoading, msgLoadingDetail(name)))
	if subtitle != nil {
		subtitle.SetText(name)
	}

	content, err := e.fetchDetail(ctx, kind, name)
	switch {
	case errors.Is(err, species.ErrNotFound):
		card.SetHTML(e.Views.Message(render.ClassError, msgNotFound(kind, name)))
	case err != nil:
		e.Log.Error("error loading species details", map[string]any{
			"view":  view.String(),
			"name":  name,
			"error": err.Error(),
		})
		card.SetHTML(e.Views.Message(render.ClassError, msgDetailFailed(name, err)))
	default:
		card.SetHTML(content)
	}
}

func (e *Env) fetchDetail(ctx context.Context, kind species.Kind, name string) (template.HTML, error) {
	if kind == species.KindPlant {
		p, err := e.Catalog.GetPlant(ctx, name)
		if err != nil {
			return "", err
		}
		return e.Views.PlantDetail(p)
	}
	f, err := e.Catalog.GetFish(ctx, name)
	if err != nil {
		return "", err
	}
	return e.Views.FishDetail(f)
}

// Run ejecuta el único loader de la vista. ViewNone no carga nada.
func (e *Env) Run(ctx context.Context, view page.View, doc *page.Document, name string) {
	switch view {
	case page.ViewFishList:
		e.LoadFishList(ctx, doc)
	case page.ViewFishDetail:
		e.LoadFishDetail(ctx, doc, name)
	case page.ViewPlantList:
		e.LoadPlantList(ctx, doc)
	case page.ViewPlantDetail:
		e.LoadPlantDetail(ctx, doc, name)
	}
}

// RunDetected es el dispatch clásico: mira qué contenedores tiene el
// documento y corre el primero según la prioridad de page.DetectView.
func (e *Env) RunDetected(ctx context.Context, doc *page.Document, name string) page.View {
	view := doc.View()
	e.Run(ctx, view, doc, name)
	return view
}
