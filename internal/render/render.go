package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"aquarium-catalog/internal/domain/species"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Clases CSS de los mensajes.
const (
	ClassError       = "error-message"
	ClassLoading     = "loading-message"
	ClassPlaceholder = "placeholder-text-search"
)

// Largos de los extractos de descripción.
const (
	ListExcerptLen   = 100
	SearchExcerptLen = 150
)

// LinkFunc arma el href al detalle de una especie.
type LinkFunc func(kind species.Kind, name string) string

// QueryLinks: links de la web servida, fish_detail.html?name=<nombre>.
func QueryLinks(kind species.Kind, name string) string {
	return kind.Noun() + "_detail.html?name=" + EncodeURIComponent(name)
}

var funcs = template.FuncMap{"imageSrc": imageSrc}

// imageSrc deja pasar las imágenes inline (data:image/...), que html/template
// cambiaría por #ZgotmplZ. El resto de los esquemas sigue el filtro normal.
func imageSrc(s string) any {
	if len(s) > len("data:image/") && strings.EqualFold(s[:len("data:image/")], "data:image/") {
		return template.URL(s)
	}
	return s
}

// Renderer agrupa los templates y la política de links.
type Renderer struct {
	tmpl       *template.Template
	detailLink LinkFunc
}

// New parsea los templates embebidos. link nil => QueryLinks.
func New(link LinkFunc) (*Renderer, error) {
	t, err := template.New("catalog").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if link == nil {
		link = QueryLinks
	}
	return &Renderer{tmpl: t, detailLink: link}, nil
}

// MustNew es New para inicialización en tests y main.
func MustNew(link LinkFunc) *Renderer {
	r, err := New(link)
	if err != nil {
		panic(err)
	}
	return r
}

// DetailLink expone la política de links (la usa el export).
func (r *Renderer) DetailLink(kind species.Kind, name string) string {
	return r.detailLink(kind, name)
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// Message es un <p> con clase. Nunca falla: el template es estático.
func (r *Renderer) Message(class, text string) template.HTML {
	h, err := r.fragment("message", struct{ Class, Text string }{class, text})
	if err != nil {
		return template.HTML(`<p class="` + ClassError + `">` + template.HTMLEscapeString(text) + `</p>`)
	}
	return h
}

type cardData struct {
	Kind     species.Kind
	Name     string
	ImageURL string
	Icon     string
	Href     string
	Excerpt  string
	Summary  species.Summary
	Fish     species.Fish
	Plant    species.Plant
}

// ListCards arma una tarjeta clickeable por especie.
func (r *Renderer) ListCards(kind species.Kind, items []species.Summary) (template.HTML, error) {
	cards := make([]cardData, 0, len(items))
	for _, it := range items {
		cards = append(cards, cardData{
			Kind:     kind,
			Name:     it.Name,
			ImageURL: it.ImageURL,
			Icon:     kind.Icon(),
			Href:     r.detailLink(kind, it.Name),
			Excerpt:  Truncate(it.Description, ListExcerptLen),
			Summary:  it,
		})
	}
	return r.fragment("list-cards", cards)
}

// FishDetail muestra todos los campos sin recortar.
func (r *Renderer) FishDetail(f species.Fish) (template.HTML, error) {
	return r.fragment("fish-detail", cardData{
		Kind:     species.KindFish,
		Name:     f.Name,
		ImageURL: f.ImageURL,
		Icon:     species.KindFish.Icon(),
		Fish:     f,
	})
}

func (r *Renderer) PlantDetail(p species.Plant) (template.HTML, error) {
	return r.fragment("plant-detail", cardData{
		Kind:     species.KindPlant,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Icon:     species.KindPlant.Icon(),
		Plant:    p,
	})
}

// SearchCard es la tarjeta única de un resultado con data.
func (r *Renderer) SearchCard(res species.SearchResult) (template.HTML, error) {
	if res.Data == nil {
		return "", fmt.Errorf("render search-card: result has no data")
	}
	kind, _ := res.Type.Kind()
	d := cardData{
		Kind:    kind,
		Name:    res.Data.Name,
		Excerpt: Truncate(res.Data.Description, SearchExcerptLen),
		Summary: *res.Data,
	}
	if kind != "" {
		d.Href = r.detailLink(kind, res.Data.Name)
	}
	return r.fragment("search-card", d)
}

// Region es un contenedor con id dentro del layout.
type Region struct {
	ID      string
	Class   string
	Content template.HTML
}

type NavLink struct {
	Label  string
	Href   string
	Active bool
}

type Hidden struct {
	Name  string
	Value string
}

type SearchForm struct {
	Action string
	Query  string
	Hidden []Hidden
}

type Overlay struct {
	Class        string
	CloseHref    string
	Display      template.HTML
	DisplayClass string
}

// PageData es todo lo que necesita el layout.
type PageData struct {
	Title     string
	Heading   string
	AssetBase string
	Nav       []NavLink
	Search    SearchForm
	Main      *Region
	Subtitle  *Region
	Overlay   Overlay
}

// Page escribe la página completa.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Truncate corta a n runas y agrega "..." siempre, como el extracto de las tarjetas.
func Truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) > n {
		rs = rs[:n]
	}
	return string(rs) + "..."
}

// EncodeURIComponent escapa un valor para query string con %20 para espacios.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
