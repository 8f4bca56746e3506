package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	cb       Callback
	releases int
}

func (o *countingObserver) Observe(_ string, _ float64, cb Callback) Subscription {
	o.cb = cb
	return o
}

func (o *countingObserver) Release() { o.releases++ }

func TestControllerStartsHidden(t *testing.T) {
	c := New("about", NewRegistry())
	assert.False(t, c.Visible())
	assert.True(t, c.Observing())
	assert.Equal(t, hiddenClasses, c.Classes())
}

func TestControllerRevealsAtThreshold(t *testing.T) {
	r := NewRegistry()
	c := New("about", r)

	require.True(t, r.Deliver("about", 0.05))
	assert.False(t, c.Visible())

	require.True(t, r.Deliver("about", 0.1))
	assert.True(t, c.Visible())
	assert.Equal(t, visibleClasses, c.Classes())
}

func TestControllerStaysVisibleAfterLeaving(t *testing.T) {
	r := NewRegistry()
	c := New("skills", r)

	r.Deliver("skills", 0.5)
	r.Deliver("skills", 0)

	assert.True(t, c.Visible())
	assert.False(t, c.Observing())
	assert.False(t, r.Observed("skills"), "subscription is torn down after the first trigger")
	assert.False(t, r.Deliver("skills", 1))
}

func TestControllerReleasesOnceOnTrigger(t *testing.T) {
	obs := &countingObserver{}
	c := New("hero", obs)

	obs.cb(Entry{Block: "hero", Ratio: 1, Intersecting: true})
	obs.cb(Entry{Block: "hero", Ratio: 1, Intersecting: true})
	c.Unmount()

	assert.Equal(t, 1, obs.releases)
}

func TestUnmountReleasesUnfiredSubscription(t *testing.T) {
	obs := &countingObserver{}
	c := New("contact", obs)

	c.Unmount()
	c.Unmount()

	assert.Equal(t, 1, obs.releases)
	assert.False(t, c.Visible())
}

func TestRegistryScopesSubscriptionsPerBlock(t *testing.T) {
	r := NewRegistry()
	a := New("about", r)
	b := New("projects", r)
	require.Equal(t, 2, r.Len())

	r.Deliver("about", 1)
	assert.True(t, a.Visible())
	assert.False(t, b.Visible())
	assert.Equal(t, 1, r.Len())

	r.ReleaseAll()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Deliver("projects", 1))
	assert.False(t, b.Visible())
}
