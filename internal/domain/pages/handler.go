package pages

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aquarium-catalog/internal/domain/page"
)

// RegisterRoutes monta una ruta por página; "/" sirve el index.
func RegisterRoutes(r chi.Router, env *Env) {
	for _, rt := range page.Routes {
		r.Get(rt.Path, pageHandler(env, rt))
	}
	r.Get("/", pageHandler(env, page.RouteFor(page.ViewNone)))
}

func pageHandler(env *Env, rt page.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := Request{
			Route:  rt,
			Name:   q.Get("name"),
			Search: q.Has("q"),
			Query:  q.Get("q"),
		}

		_, data := env.Build(r.Context(), req)

		// Los fallos del backend ya quedaron como mensaje dentro de la página;
		// acá solo puede fallar el template.
		var buf bytes.Buffer
		if err := env.Views.Page(&buf, data); err != nil {
			env.Log.Error("render page failed", map[string]any{
				"path":  rt.Path,
				"error": err.Error(),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
