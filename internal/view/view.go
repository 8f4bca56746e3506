// Package view turns content and page state into the rendered site.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/background"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded css and js.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

var funcs = template.FuncMap{
	"reveal": revealAttrs,
	"title":  sectionTitle,
	"mul":    func(a, b int) int { return a * b },
}

// Page is the data every template receives.
type Page struct {
	Session    string
	Theme      theme.Theme
	C          theme.Classes
	MenuOpen   bool
	MenuItems  []string
	Reveals    map[string]session.RevealState
	Blobs      []background.Blob
	Backdrop   string
	BlobClass  string
	Content    *content.Content
	About      template.HTML
	Form       contact.Fields
	Submitting bool
	Toasts     []notify.Toast
	Year       int
}

// Build assembles the template data for one render. Pending toasts are
// passed in already drained.
func Build(c *content.Content, snap session.Snapshot, toasts []notify.Toast, now time.Time) (Page, error) {
	about, err := c.Profile.AboutHTML()
	if err != nil {
		return Page{}, err
	}
	backdrop, blob := background.Palette(snap.Theme)
	return Page{
		Session:    snap.ID,
		Theme:      snap.Theme,
		C:          snap.Classes,
		MenuOpen:   snap.MenuOpen,
		MenuItems:  nav.MenuItems,
		Reveals:    snap.Reveals,
		Blobs:      snap.Blobs,
		Backdrop:   backdrop,
		BlobClass:  blob,
		Content:    c,
		About:      about,
		Form:       snap.Form,
		Submitting: snap.Submitting,
		Toasts:     toasts,
		Year:       now.Year(),
	}, nil
}

// revealAttrs renders the wrapper attributes of a reveal block. While the
// block is observed it carries the htmx intersect trigger; once revealed the
// trigger is gone for good.
func revealAttrs(p Page, block string) template.HTMLAttr {
	st, ok := p.Reveals[block]
	if !ok {
		st = session.RevealState{Visible: true, Classes: "opacity-100 translate-y-0"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, `data-reveal="%s" class="transition-all duration-1000 %s"`,
		template.HTMLEscapeString(block), template.HTMLEscapeString(st.Classes))
	if st.Observing {
		fmt.Fprintf(&b, ` hx-post="/s/%s/reveal/%s" hx-trigger="intersect once threshold:%g" hx-swap="none"`,
			template.HTMLEscapeString(p.Session), template.HTMLEscapeString(block), reveal.Threshold)
	}
	return template.HTMLAttr(b.String())
}

func sectionTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
