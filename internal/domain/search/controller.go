package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/species"
	"aquarium-catalog/internal/platform/logger"
	"aquarium-catalog/internal/ports/catalog"
	"aquarium-catalog/internal/render"
)

// Textos fijos del overlay.
const (
	MsgIdle       = "Your search results will appear here."
	MsgEmptyQuery = "Please enter a search query."
	MsgSearching  = "Searching..."
)

// Clases de estado del overlay y del área de resultados.
const (
	ClassActive  = "active"
	ClassLoading = "loading"
)

var ErrMissingElements = errors.New("search: page lacks overlay elements")

// Controller maneja el overlay de búsqueda de un documento.
type Controller struct {
	catalog catalog.Catalog
	views   *render.Renderer
	log     logger.Logger

	overlay *page.Node
	display *page.Node
}

// NewController exige los elementos del overlay (input, botón, overlay,
// cerrar, resultados); si falta alguno la búsqueda no se activa.
func NewController(c catalog.Catalog, views *render.Renderer, log logger.Logger, doc *page.Document) (*Controller, error) {
	for _, id := range page.SearchIDs {
		if !doc.Has(id) {
			return nil, fmt.Errorf("%w: %s", ErrMissingElements, id)
		}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		catalog: c,
		views:   views,
		log:     log.With(map[string]any{"component": "search"}),
		overlay: doc.Get(page.IDSearchOverlay),
		display: doc.Get(page.IDResultsDisplay),
	}, nil
}

// Toggle muestra u oculta el overlay; al abrirlo resetea los resultados.
func (c *Controller) Toggle(show bool) {
	if !show {
		c.overlay.RemoveClass(ClassActive)
		return
	}
	c.overlay.AddClass(ClassActive)
	c.display.SetHTML(c.views.Message(render.ClassPlaceholder, MsgIdle))
}

// Close es la acción explícita de cerrar.
func (c *Controller) Close() { c.Toggle(false) }

// Click cierra solo si el target es el fondo del overlay y no su contenido.
func (c *Controller) Click(targetID string) {
	if targetID == c.overlay.ID() {
		c.Toggle(false)
	}
}

// Submit ejecuta una búsqueda (click en el botón o Enter).
// Query vacía: mensaje local, sin request y sin tocar el overlay.
// Si no, deja exactamente uno de: error, tarjeta o mensaje del servidor.
func (c *Controller) Submit(ctx context.Context, raw string) {
	query := strings.TrimSpace(raw)
	if query == "" {
		c.display.SetHTML(c.views.Message(render.ClassPlaceholder, MsgEmptyQuery))
		return
	}

	c.Toggle(true)
	c.display.AddClass(ClassLoading)
	c.display.SetHTML(c.views.Message(render.ClassPlaceholder+" "+render.ClassLoading, MsgSearching))
	defer c.display.RemoveClass(ClassLoading)

	res, err := c.catalog.Search(ctx, query)
	if err != nil {
		c.fail(query, err)
		return
	}

	switch {
	case res.Type == species.ResultError:
		c.display.SetHTML(c.views.Message(render.ClassError, res.Message))
	case res.Data != nil:
		card, err := c.views.SearchCard(res)
		if err != nil {
			c.fail(query, err)
			return
		}
		c.display.SetHTML(card)
	default:
		c.display.SetHTML(c.views.Message(render.ClassPlaceholder, res.Message))
	}
}

func (c *Controller) fail(query string, err error) {
	c.log.Error("error fetching search results", map[string]any{
		"query": query,
		"error": err.Error(),
	})
	c.display.SetHTML(c.views.Message(render.ClassError,
		fmt.Sprintf("An error occurred while searching. (%s)", err.Error())))
}
