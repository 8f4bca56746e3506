package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerDefaultsToDark(t *testing.T) {
	c := NewController()
	assert.Equal(t, Dark, c.Current())
	assert.Equal(t, "bg-blue-500 mix-blend-screen", c.Classes().Blob)
}

func TestToggleTwiceRestoresClasses(t *testing.T) {
	c := NewController()
	before := c.Classes()

	assert.Equal(t, Light, c.Toggle())
	assert.NotEqual(t, before, c.Classes())

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, before, c.Classes())
}

func TestPalettesDiffer(t *testing.T) {
	d, l := ClassesFor(Dark), ClassesFor(Light)
	assert.NotEqual(t, d.Page, l.Page)
	assert.NotEqual(t, d.Input, l.Input)
	assert.NotEqual(t, d.Blob, l.Blob)
	assert.NotEqual(t, d.Backdrop, l.Backdrop)
}
