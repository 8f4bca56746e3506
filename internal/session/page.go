// Package session keeps the UI state of each loaded page. A page lives from
// the moment it is served until the browser closes it or it idles out; a
// reload always starts a fresh one.
package session

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/background"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/theme"
)

// DefaultBlocks are the reveal-wrapped blocks of the page, in page order.
var DefaultBlocks = []string{
	"hero", "about", "skills", "projects", "resume-preview", "resume-details", "experience", "contact",
}

// Deps are shared by every page of a store.
type Deps struct {
	Relay       contact.Relay
	Credentials contact.Credentials
	Logger      zerolog.Logger
	// Blocks defaults to DefaultBlocks, Sections to nav.Sections.
	Blocks   []string
	Sections []string
	// Rand seeds background generation; nil is unseeded.
	Rand *rand.Rand
	Now  func() time.Time

	// MaxPages caps the live pages of a store; zero means DefaultMaxPages.
	MaxPages int
}

// Page is the state of one loaded page. Operations are serialized by the
// page's own lock; the relay call inside Form.Submit runs outside it.
type Page struct {
	ID string

	mu       sync.Mutex
	lastSeen time.Time
	closed   atomic.Bool

	theme      *theme.Controller
	nav        *nav.Controller
	registry   *reveal.Registry
	reveals    []*reveal.Controller
	background *background.Background
	form       *contact.Form
	toasts     *notify.Queue
}

func newPage(d Deps, now time.Time) *Page {
	p := &Page{
		ID:         uuid.NewString(),
		lastSeen:   now,
		theme:      theme.NewController(),
		nav:        nav.NewController(d.Sections),
		registry:   reveal.NewRegistry(),
		background: background.New(d.Rand),
		toasts:     notify.NewQueue(),
	}
	blocks := d.Blocks
	if blocks == nil {
		blocks = DefaultBlocks
	}
	for _, b := range blocks {
		p.reveals = append(p.reveals, reveal.New(b, p.registry))
	}
	p.form = contact.NewForm(contact.Options{
		Relay:       d.Relay,
		Credentials: d.Credentials,
		Notifier:    p.toasts,
		Alive:       p.Alive,
		Logger:      d.Logger.With().Str("page", p.ID).Logger(),
		Now:         d.Now,
	})
	return p
}

// Alive reports whether the page is still mounted.
func (p *Page) Alive() bool { return !p.closed.Load() }

func (p *Page) close() {
	if p.closed.Swap(true) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range p.reveals {
		r.Unmount()
	}
	p.registry.ReleaseAll()
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = now
}

func (p *Page) idleSince() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// ToggleTheme flips the page theme.
func (p *Page) ToggleTheme() theme.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme.Toggle()
}

// ToggleMenu flips the mobile menu.
func (p *Page) ToggleMenu() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nav.ToggleMenu()
}

// Navigate scrolls to section and closes the menu; unknown sections are ignored.
func (p *Page) Navigate(section string, s nav.Scroller) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nav.Navigate(section, s)
}

// Intersect delivers a viewport report for block. It returns whether the
// block is visible afterwards and whether anything was observing it.
func (p *Page) Intersect(block string, ratio float64) (visible, observed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	observed = p.registry.Deliver(block, ratio)
	for _, r := range p.reveals {
		if r.Block() == block {
			return r.Visible(), observed
		}
	}
	return false, observed
}

// Form returns the page's contact form.
func (p *Page) Form() *contact.Form { return p.form }

// Toasts drains pending notifications.
func (p *Page) Toasts() []notify.Toast { return p.toasts.Drain() }

// RevealState is the render state of one block.
type RevealState struct {
	Visible   bool
	Observing bool
	Classes   string
}

// Snapshot is a consistent read of the page for rendering.
type Snapshot struct {
	ID         string
	Theme      theme.Theme
	Classes    theme.Classes
	MenuOpen   bool
	Reveals    map[string]RevealState
	Blobs      []background.Blob
	Form       contact.Fields
	FormState  contact.State
	Submitting bool
}

// Snapshot captures everything a render needs.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := Snapshot{
		ID:       p.ID,
		Theme:    p.theme.Current(),
		Classes:  p.theme.Classes(),
		MenuOpen: p.nav.MenuOpen(),
		Reveals:  make(map[string]RevealState, len(p.reveals)),
		Blobs:    p.background.Blobs(),
	}
	for _, r := range p.reveals {
		s.Reveals[r.Block()] = RevealState{Visible: r.Visible(), Observing: r.Observing(), Classes: r.Classes()}
	}
	s.Form = p.form.Fields()
	s.FormState = p.form.State()
	s.Submitting = s.FormState == contact.Submitting
	return s
}
