package listview

import "time"

// limitAlertWindow is how long the "limit reached" signal stays visible
// after a rejected toggle.
const limitAlertWindow = 2500 * time.Millisecond

// Customizer manages the two-tier (committed vs. draft) visible-column
// selection with a hard cap. The draft only exists while the customization
// surface is open; committed changes on Apply and on nothing else.
type Customizer struct {
	available []Column
	committed map[string]bool
	draft     map[string]bool
	max       int
	open      bool

	limitUntil time.Time
	now        func() time.Time
}

// NewCustomizer builds a customizer over the available columns. The initial
// committed selection is truncated to max; max is per-page configuration,
// never a package constant.
func NewCustomizer(available []Column, initial []string, max int) *Customizer {
	c := &Customizer{
		available: available,
		committed: make(map[string]bool),
		max:       max,
		now:       time.Now,
	}
	for _, key := range initial {
		if len(c.committed) >= max {
			break
		}
		if c.known(key) {
			c.committed[key] = true
		}
	}
	return c
}

// WithNow overrides the customizer clock for testing.
func (c *Customizer) WithNow(fn func() time.Time) {
	if fn != nil {
		c.now = fn
	}
}

// Open snapshots committed into a fresh draft. A draft discarded by a prior
// Cancel is never resumed.
func (c *Customizer) Open() {
	c.draft = make(map[string]bool, len(c.committed))
	for key := range c.committed {
		c.draft[key] = true
	}
	c.open = true
}

// IsOpen reports whether the customization surface is open.
func (c *Customizer) IsOpen() bool {
	return c.open
}

// Toggle flips the draft membership of key. Removing always succeeds.
// Adding succeeds only below the cap; at the cap the draft is left unchanged
// and the transient limit signal is raised. The return value reports whether
// the draft changed.
func (c *Customizer) Toggle(key string) bool {
	if !c.open || !c.known(key) {
		return false
	}
	if c.draft[key] {
		delete(c.draft, key)
		return true
	}
	if len(c.draft) >= c.max {
		c.limitUntil = c.now().Add(limitAlertWindow)
		return false
	}
	c.draft[key] = true
	return true
}

// Apply commits the draft and closes the surface.
func (c *Customizer) Apply() {
	if !c.open {
		return
	}
	c.committed = c.draft
	c.draft = nil
	c.open = false
}

// Cancel discards the draft; committed is unchanged.
func (c *Customizer) Cancel() {
	c.draft = nil
	c.open = false
}

// LimitAlertActive reports whether the "limit reached" signal is still
// within its display window. The signal auto-clears by expiry; no timer
// goroutine is involved.
func (c *Customizer) LimitAlertActive() bool {
	return c.now().Before(c.limitUntil)
}

// Committed returns the applied columns in available-column order.
func (c *Customizer) Committed() []Column {
	return c.resolve(c.committed)
}

// Draft returns the in-progress columns in available-column order.
func (c *Customizer) Draft() []Column {
	return c.resolve(c.draft)
}

// Available returns the full ordered column catalogue.
func (c *Customizer) Available() []Column {
	return c.available
}

// Max returns the selection cap.
func (c *Customizer) Max() int {
	return c.max
}

func (c *Customizer) resolve(keys map[string]bool) []Column {
	out := make([]Column, 0, len(keys))
	for _, col := range c.available {
		if keys[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

func (c *Customizer) known(key string) bool {
	for _, col := range c.available {
		if col.Key == key {
			return true
		}
	}
	return false
}
