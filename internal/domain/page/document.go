package page

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ChangeFunc se invoca en cada escritura a un nodo. Puede llamarse desde
// varias goroutines (loader y búsqueda corren en paralelo).
type ChangeFunc func(id string, content template.HTML)

// Document es el conjunto de elementos con id de una página. La estructura
// es fija desde NewDocument; cada nodo tiene un único escritor.
type Document struct {
	ids      []string
	nodes    map[string]*Node
	onChange ChangeFunc
}

func NewDocument(ids ...string) *Document {
	d := &Document{nodes: make(map[string]*Node, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := d.nodes[id]; ok {
			continue
		}
		d.ids = append(d.ids, id)
		d.nodes[id] = &Node{id: id, doc: d}
	}
	return d
}

// ForView arma el documento de una vista: overlay de búsqueda + contenedor
// (+ subtítulo en detalle).
func ForView(v View) *Document {
	ids := append([]string{}, SearchIDs...)
	if id := v.ContainerID(); id != "" {
		ids = append(ids, id)
	}
	if id := v.SubtitleID(); id != "" {
		ids = append(ids, id)
	}
	return NewDocument(ids...)
}

// Watch registra un observador de cambios; debe fijarse antes de usar el documento.
func (d *Document) Watch(fn ChangeFunc) { d.onChange = fn }

func (d *Document) IDs() []string { return append([]string(nil), d.ids...) }

func (d *Document) Has(id string) bool {
	_, ok := d.nodes[id]
	return ok
}

// Get devuelve nil si el id no existe.
func (d *Document) Get(id string) *Node {
	return d.nodes[id]
}

// View detecta la vista por los contenedores presentes.
func (d *Document) View() View {
	return DetectView(d.ids...)
}

// Node es un elemento contenedor.
type Node struct {
	id      string
	doc     *Document
	content template.HTML
	classes []string
}

func (n *Node) ID() string { return n.id }

func (n *Node) HTML() template.HTML { return n.content }

// SetHTML reemplaza el contenido (innerHTML).
func (n *Node) SetHTML(h template.HTML) {
	n.content = h
	if n.doc != nil && n.doc.onChange != nil {
		n.doc.onChange(n.id, h)
	}
}

// SetText reemplaza el contenido por texto escapado (textContent).
func (n *Node) SetText(s string) {
	n.SetHTML(template.HTML(template.HTMLEscapeString(s)))
}

// TextContent es el texto visible del nodo, sin tags ni entidades.
func (n *Node) TextContent() string {
	return TextContent(n.content)
}

// Count cuenta los elementos del contenido con ese tag y/o clase ("" = cualquiera).
func (n *Node) Count(tag, class string) int {
	return CountElements(n.content, tag, class)
}

func (n *Node) AddClass(c string) {
	if !n.HasClass(c) {
		n.classes = append(n.classes, c)
	}
}

func (n *Node) RemoveClass(c string) {
	out := n.classes[:0]
	for _, x := range n.classes {
		if x != c {
			out = append(out, x)
		}
	}
	n.classes = out
}

func (n *Node) HasClass(c string) bool {
	for _, x := range n.classes {
		if x == c {
			return true
		}
	}
	return false
}

// ClassName devuelve las clases separadas por espacio.
func (n *Node) ClassName() string { return strings.Join(n.classes, " ") }

// TextContent extrae el texto de un fragmento HTML.
func TextContent(h template.HTML) string {
	nodes, err := parseFragment(h)
	if err != nil {
		return string(h)
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.TextNode {
			b.WriteString(x.Data)
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, x := range nodes {
		walk(x)
	}
	return b.String()
}

// CountElements cuenta elementos por tag y clase dentro del fragmento.
func CountElements(h template.HTML, tag, class string) int {
	nodes, err := parseFragment(h)
	if err != nil {
		return 0
	}
	count := 0
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.ElementNode && (tag == "" || x.Data == tag) && (class == "" || hasClassAttr(x, class)) {
			count++
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, x := range nodes {
		walk(x)
	}
	return count
}

func parseFragment(h template.HTML) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(string(h)), ctx)
}

func hasClassAttr(x *html.Node, class string) bool {
	for _, a := range x.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
