// Package theme holds the dark/light page mode and the style classes derived from it.
package theme

// Theme is the visual mode applied to the whole page.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is the mode every page starts in.
const Default = Dark

// Toggled returns the opposite mode.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Controller is the binary toggle owned by one page.
type Controller struct {
	current Theme
}

// NewController starts at Default.
func NewController() *Controller {
	return &Controller{current: Default}
}

// Current returns the active mode.
func (c *Controller) Current() Theme {
	return c.current
}

// Toggle flips the mode and returns the new value.
func (c *Controller) Toggle() Theme {
	c.current = c.current.Toggled()
	return c.current
}

// Classes returns the style selections for the current mode.
func (c *Controller) Classes() Classes {
	return ClassesFor(c.current)
}
