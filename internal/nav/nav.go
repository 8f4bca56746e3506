// Package nav scrolls between the page's named sections and owns the mobile
// menu state.
package nav

import "slices"

// Section ids, in page order.
const (
	Hero       = "hero"
	About      = "about"
	Skills     = "skills"
	Projects   = "projects"
	Experience = "experience"
	Resume     = "resume"
	Contact    = "contact"
)

// Sections lists every anchor on the page.
var Sections = []string{Hero, About, Skills, Projects, Experience, Resume, Contact}

// MenuItems are the sections offered in the header menus.
var MenuItems = []string{About, Skills, Projects, Experience, Contact}

// Scroller brings a section into view.
type Scroller interface {
	ScrollIntoView(section string)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(section string)

func (f ScrollerFunc) ScrollIntoView(section string) { f(section) }

// Controller holds the menu-open flag for one page.
type Controller struct {
	sections []string
	menuOpen bool
}

// NewController builds a controller for the given sections; nil means Sections.
func NewController(sections []string) *Controller {
	if sections == nil {
		sections = Sections
	}
	return &Controller{sections: sections}
}

// Has reports whether id names a section on the page.
func (c *Controller) Has(id string) bool {
	return slices.Contains(c.sections, id)
}

// Navigate scrolls to id and closes the menu. Unknown ids are ignored and
// Navigate returns false.
func (c *Controller) Navigate(id string, s Scroller) bool {
	if !c.Has(id) {
		return false
	}
	s.ScrollIntoView(id)
	c.menuOpen = false
	return true
}

// ToggleMenu flips the mobile menu and returns the new state.
func (c *Controller) ToggleMenu() bool {
	c.menuOpen = !c.menuOpen
	return c.menuOpen
}

// MenuOpen reports the mobile menu state.
func (c *Controller) MenuOpen() bool { return c.menuOpen }
