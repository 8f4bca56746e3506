package reveal

// Registry is an Observer fed by intersection reports from the browser.
// Each page owns one; it is not safe for concurrent use.
type Registry struct {
	subs map[string][]*subscription
}

type subscription struct {
	r         *Registry
	block     string
	threshold float64
	cb        Callback
	released  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string][]*subscription)}
}

// Observe registers cb for block.
func (r *Registry) Observe(block string, threshold float64, cb Callback) Subscription {
	s := &subscription{r: r, block: block, threshold: threshold, cb: cb}
	r.subs[block] = append(r.subs[block], s)
	return s
}

// Deliver reports that block is showing ratio of its area. It returns false
// when nothing observes the block.
func (r *Registry) Deliver(block string, ratio float64) bool {
	subs := r.subs[block]
	if len(subs) == 0 {
		return false
	}
	// callbacks may release themselves while we iterate
	pending := append([]*subscription(nil), subs...)
	for _, s := range pending {
		if s.released {
			continue
		}
		s.cb(Entry{Block: block, Ratio: ratio, Intersecting: ratio > 0 && ratio >= s.threshold})
	}
	return true
}

// Observed reports whether block has a live subscription.
func (r *Registry) Observed(block string) bool {
	return len(r.subs[block]) > 0
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	n := 0
	for _, subs := range r.subs {
		n += len(subs)
	}
	return n
}

// ReleaseAll drops every subscription.
func (r *Registry) ReleaseAll() {
	for _, subs := range r.subs {
		for _, s := range subs {
			s.released = true
		}
	}
	clear(r.subs)
}

func (s *subscription) Release() {
	if s.released {
		return
	}
	s.released = true
	subs := s.r.subs[s.block]
	for i, other := range subs {
		if other == s {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(s.r.subs, s.block)
		return
	}
	s.r.subs[s.block] = subs
}
