package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"aquarium-catalog/internal/domain/page"
	"aquarium-catalog/internal/domain/pages"
	"aquarium-catalog/internal/domain/species"
	"aquarium-catalog/internal/platform/logger"
	"aquarium-catalog/internal/ports/catalog"
	"aquarium-catalog/internal/render"
)

const DefaultConcurrency = 4

type Options struct {
	OutDir      string
	Concurrency int
	// Progress recibe la barra; nil => sin barra.
	Progress io.Writer
	Log      logger.Logger
}

type Result struct {
	Files []string
}

// Exporter genera una copia estática navegable del catálogo: index, listas
// y un archivo por especie, con links relativos entre ellos.
type Exporter struct {
	catalog catalog.Catalog
	opts    Options
	log     logger.Logger
}

func New(c catalog.Catalog, opts Options) *Exporter {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{catalog: c, opts: opts, log: log.With(map[string]any{"component": "export"})}
}

// fileNames asigna un archivo único por especie: fish-betta.html, y si el
// slug ya está tomado por otro nombre, fish-betta-2.html. La misma tabla
// arma los links de las listas y los archivos de detalle.
type fileNames struct {
	mu     sync.Mutex
	byName map[string]string
	used   map[string]bool
}

func newFileNames() *fileNames {
	return &fileNames{byName: map[string]string{}, used: map[string]bool{}}
}

// Link es un render.LinkFunc; el mismo nombre siempre da el mismo archivo.
func (f *fileNames) Link(kind species.Kind, name string) string {
	key := string(kind) + "\x00" + name

	f.mu.Lock()
	defer f.mu.Unlock()
	if file, ok := f.byName[key]; ok {
		return file
	}
	base := kind.Noun() + "-" + Slug(name)
	file := base + ".html"
	for i := 2; f.used[file]; i++ {
		file = fmt.Sprintf("%s-%d.html", base, i)
	}
	f.used[file] = true
	f.byName[key] = file
	return file
}

// Slug deja letras y dígitos en minúscula; el resto colapsa a "-".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "unnamed"
	}
	return s
}

func (e *Exporter) Export(ctx context.Context) (Result, error) {
	if err := os.MkdirAll(e.opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create out dir: %w", err)
	}

	rec := &recorder{Catalog: e.catalog, names: map[species.Kind][]string{}}
	files := newFileNames()
	env := pages.NewEnv(rec, render.MustNew(files.Link), e.log)

	var res Result
	var mu sync.Mutex
	write := func(file string, data render.PageData) error {
		var buf bytes.Buffer
		if err := env.Views.Page(&buf, data); err != nil {
			return err
		}
		path := filepath.Join(e.opts.OutDir, file)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		mu.Lock()
		res.Files = append(res.Files, file)
		mu.Unlock()
		return nil
	}

	// index + listas; las listas dejan registrados los nombres
	for _, v := range []page.View{page.ViewNone, page.ViewFishList, page.ViewPlantList} {
		rt := page.RouteFor(v)
		_, data := env.Build(ctx, pages.Request{Route: rt})
		if err := write(rt.File(), data); err != nil {
			return res, err
		}
	}

	type job struct {
		kind species.Kind
		name string
	}
	var jobs []job
	for _, k := range species.Kinds {
		seen := map[string]bool{}
		for _, n := range rec.Names(k) {
			if seen[n] {
				continue
			}
			seen[n] = true
			jobs = append(jobs, job{kind: k, name: n})
		}
	}

	bar := e.progress(len(jobs))
	defer func() { _ = bar.Finish() }()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			rt := page.RouteFor(page.DetailView(j.kind))
			file := files.Link(j.kind, j.name)
			_, data := env.Build(gctx, pages.Request{Route: rt, Name: j.name, Self: file})
			if err := write(file, data); err != nil {
				return err
			}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	e.log.Info("export finished", map[string]any{
		"dir":   e.opts.OutDir,
		"pages": len(res.Files),
	})
	return res, nil
}

func (e *Exporter) progress(total int) *progressbar.ProgressBar {
	w := e.opts.Progress
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Exporting detail pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// recorder anota los nombres que devuelven los listados.
type recorder struct {
	catalog.Catalog

	mu    sync.Mutex
	names map[species.Kind][]string
}

func (r *recorder) ListSpecies(ctx context.Context, kind species.Kind) ([]species.Summary, error) {
	items, err := r.Catalog.ListSpecies(ctx, kind)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		r.names[kind] = append(r.names[kind], it.Name)
	}
	return items, nil
}

func (r *recorder) Names(kind species.Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names[kind]...)
}
