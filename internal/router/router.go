package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"aquarium-catalog/internal/domain/pages"
	"aquarium-catalog/internal/domain/search"
	"aquarium-catalog/internal/middleware"
	"aquarium-catalog/internal/platform/logger"
)

type Options struct {
	Env *pages.Env

	// Orígenes CORS para POST /search. Vacío => cualquiera.
	CORSOrigins []string

	// Opcional: css/img de las páginas bajo /static/.
	StaticDir string

	Log logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Páginas (una vista explícita por ruta)
	pages.RegisterRoutes(r, opts.Env)

	// Fragmento del overlay, embebible desde otros orígenes
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(corsOptions(opts.CORSOrigins)))
		search.RegisterRoutes(r, opts.Env.Catalog, opts.Env.Views, log)
	})

	if dir := opts.StaticDir; dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
		} else {
			log.Warn("static dir not found, skipping", map[string]any{"dir": dir})
		}
	}

	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{"X-Search-Overlay", middleware.HeaderRequestID},
		MaxAge:         300,
	}
}
