// Package reveal implements the one-shot hidden-to-visible transition of a
// content block when it first scrolls into view.
package reveal

// Threshold is the visible area fraction that triggers a reveal.
const Threshold = 0.1

const (
	hiddenClasses  = "opacity-0 translate-y-10"
	visibleClasses = "opacity-100 translate-y-0"
)

// Entry is one intersection report for an observed block.
type Entry struct {
	Block        string
	Ratio        float64
	Intersecting bool
}

// Callback receives intersection reports.
type Callback func(Entry)

// Subscription is a registered observation. Release is idempotent.
type Subscription interface {
	Release()
}

// Observer watches blocks for viewport intersection.
type Observer interface {
	Observe(block string, threshold float64, cb Callback) Subscription
}

// Controller wraps one content block. It is not safe for concurrent use; the
// owning page serializes access.
type Controller struct {
	block   string
	visible bool
	sub     Subscription
}

// New subscribes a controller for block on obs.
func New(block string, obs Observer) *Controller {
	c := &Controller{block: block}
	c.sub = obs.Observe(block, Threshold, c.handle)
	return c
}

func (c *Controller) handle(e Entry) {
	if c.visible || !e.Intersecting {
		return
	}
	c.visible = true
	c.release()
}

func (c *Controller) release() {
	if c.sub == nil {
		return
	}
	c.sub.Release()
	c.sub = nil
}

// Unmount drops the subscription whether or not the block was revealed.
func (c *Controller) Unmount() {
	c.release()
}

// Block returns the id of the wrapped block.
func (c *Controller) Block() string { return c.block }

// Visible reports whether the block has been revealed.
func (c *Controller) Visible() bool { return c.visible }

// Observing reports whether the subscription is still held.
func (c *Controller) Observing() bool { return c.sub != nil }

// Classes returns the transition classes for the current state.
func (c *Controller) Classes() string {
	if c.visible {
		return visibleClasses
	}
	return hiddenClasses
}
