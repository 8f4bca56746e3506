// Package background generates the decorative floating blobs behind the page.
package background

import (
	"fmt"
	"html/template"
	"math/rand/v2"

	"github.com/Zachkp/portfolio/internal/theme"
)

// Count is the number of blobs on every page.
const Count = 6

const (
	minDiameter = 10.0 // vw
	maxDiameter = 40.0
	minDuration = 30.0 // seconds
	maxDuration = 60.0
	maxDelay    = 2.0 * Count
)

// Blob is one decorative circle. Sizes and positions are in viewport units,
// timings in seconds.
type Blob struct {
	Diameter float64
	Left     float64
	Top      float64
	Delay    float64
	Duration float64
}

// Style renders the inline CSS for the blob.
func (b Blob) Style() template.CSS {
	return template.CSS(fmt.Sprintf("width:%.2fvw;height:%.2fvw;left:%.2fvw;top:%.2fvh;animation-delay:%.2fs;animation-duration:%.2fs",
		b.Diameter, b.Diameter, b.Left, b.Top, b.Delay, b.Duration))
}

// Generate draws Count blobs. A nil rng uses the unseeded global source.
func Generate(rng *rand.Rand) []Blob {
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	blobs := make([]Blob, Count)
	for i := range blobs {
		blobs[i] = Blob{
			Diameter: minDiameter + f()*(maxDiameter-minDiameter),
			Left:     f() * 100,
			Top:      f() * 100,
			Delay:    f() * maxDelay,
			Duration: minDuration + f()*(maxDuration-minDuration),
		}
	}
	return blobs
}

// Background is the memoized blob set of one page. The palette follows the
// theme; the geometry does not change for the page's lifetime.
type Background struct {
	blobs []Blob
}

// New draws the blobs for a freshly loaded page.
func New(rng *rand.Rand) *Background {
	return &Background{blobs: Generate(rng)}
}

// Blobs returns a copy of the generated blobs.
func (b *Background) Blobs() []Blob {
	return append([]Blob(nil), b.blobs...)
}

// Palette returns the backdrop and blob classes for t.
func Palette(t theme.Theme) (backdrop, blob string) {
	c := theme.ClassesFor(t)
	return c.Backdrop, c.Blob
}
