package pages

import (
	"aquarium-catalog/internal/platform/logger"
	"aquarium-catalog/internal/ports/catalog"
	"aquarium-catalog/internal/render"
)

// Env es el contexto explícito que recibe cada loader: la API, los
// templates y el logger. Se construye una vez en main (o en el test).
type Env struct {
	Catalog catalog.Catalog
	Views   *render.Renderer
	Log     logger.Logger

	// AssetBase prefija style.css ("/static/" servido, "" en el export).
	AssetBase string
}

func NewEnv(c catalog.Catalog, views *render.Renderer, log logger.Logger) *Env {
	if log == nil {
		log = logger.Nop()
	}
	return &Env{Catalog: c, Views: views, Log: log}
}
