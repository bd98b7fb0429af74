package catalog

import (
	"context"

	"aquarium-catalog/internal/domain/species"
)

// Catalog es la API REST de especies vista desde las páginas.
// GetFish/GetPlant devuelven species.ErrNotFound ante un 404 y
// *species.APIError ante cualquier otro no-2xx.
type Catalog interface {
	ListSpecies(ctx context.Context, kind species.Kind) ([]species.Summary, error)
	GetFish(ctx context.Context, name string) (species.Fish, error)
	GetPlant(ctx context.Context, name string) (species.Plant, error)
	Search(ctx context.Context, query string) (species.SearchResult, error)
}
