package species

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: la API respondió 404 para el detalle pedido.
	ErrNotFound = errors.New("species not found")
)

// APIError representa una respuesta no-2xx distinta de 404.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.Status, e.Message)
}
