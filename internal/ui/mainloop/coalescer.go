package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run on the loop. The
// latest callback posted for a key wins.
type Coalescer struct {
	mu        sync.Mutex
	scheduled map[string]func()
	post      func(func()) bool
	merged    int
	stopped   bool
}

// NewCoalescer schedules merged work through post, typically Loop.Post.
func NewCoalescer(post func(func()) bool) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		scheduled: make(map[string]func()),
		post:      post,
	}
}

// Post schedules fn under key unless a run for key is already queued, in
// which case fn replaces the queued callback.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, queued := c.scheduled[key]
	c.scheduled[key] = fn
	if queued {
		c.merged++
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if !c.post(func() { c.run(key) }) {
		c.mu.Lock()
		delete(c.scheduled, key)
		c.mu.Unlock()
	}
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.scheduled[key]
	delete(c.scheduled, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Pending reports whether a run for key is queued.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.scheduled[key]
	return ok
}

// Merged returns how many posts were folded into an already queued run.
func (c *Coalescer) Merged() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged
}

// Stop drops queued work and ignores later posts.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.scheduled = make(map[string]func())
	c.mu.Unlock()
}
