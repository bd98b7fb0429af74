package search

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/platform/logger"
	"aquarium-catalog/internal/ports/catalog"
	"aquarium-catalog/internal/render"
)

// RegisterRoutes monta POST /search, que devuelve solo el contenido de
// results-display (para páginas que actualizan el overlay sin recargar).
func RegisterRoutes(r chi.Router, c catalog.Catalog, views *render.Renderer, log logger.Logger) {
	r.Post("/search", fragmentHandler(c, views, log))
}

type fragmentRequest struct {
	Query string `json:"query"`
}

func fragmentHandler(c catalog.Catalog, views *render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := readQuery(r)
		if !ok {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		doc := page.NewDocument(page.SearchIDs...)
		ctrl, err := NewController(c, views, log, doc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		ctrl.Submit(r.Context(), query)

		overlay := doc.Get(page.IDSearchOverlay)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if overlay.HasClass(ClassActive) {
			w.Header().Set("X-Search-Overlay", "open")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc.Get(page.IDResultsDisplay).HTML()))
	}
}

// readQuery acepta JSON {"query": "..."} o un form con query (o q).
func readQuery(r *http.Request) (string, bool) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req fragmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", false
		}
		return req.Query, true
	}
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	if q := r.PostForm.Get("query"); strings.TrimSpace(q) != "" {
		return q, true
	}
	return r.Form.Get("q"), true
}
