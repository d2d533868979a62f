package engine

import "strings"

// segment is one run of composition input.
type segment struct {
	text      string
	confirmed bool
}

// updateHandle identifies a live update registration so a stale cancel
// cannot clear a newer subscriber.
type updateHandle struct {
	fn func()
}

// Context is the session's composition context. It implements the
// contract the composer consumes.
type Context struct {
	options  map[string]bool
	segments []segment
	history  *History
	deliver  func(text string)
	update   *updateHandle
}

// newContext creates a context delivering committed text to the given
// function.
func newContext(deliver func(text string)) *Context {
	return &Context{
		options: make(map[string]bool),
		history: NewHistory(),
		deliver: deliver,
	}
}

// Option returns the named boolean option.
func (c *Context) Option(name string) bool {
	return c.options[name]
}

// SetOption sets the named boolean option.
func (c *Context) SetOption(name string, on bool) {
	c.options[name] = on
}

// IsComposing reports whether a composition is under construction.
func (c *Context) IsComposing() bool {
	return len(c.segments) > 0
}

// Preedit returns the composition text as the user would see it.
func (c *Context) Preedit() string {
	var b strings.Builder
	for _, s := range c.segments {
		b.WriteString(s.text)
	}
	return b.String()
}

// LatestCommit returns the most recent committed segment, or "".
func (c *Context) LatestCommit() string {
	return c.history.Latest()
}

// ClearCommitHistory empties the commit-history buffer.
func (c *Context) ClearCommitHistory() {
	c.history.Clear()
}

// PushInput appends a literal character to the composition input,
// opening a new segment after a confirmed one.
func (c *Context) PushInput(r rune) {
	if n := len(c.segments); n == 0 || c.segments[n-1].confirmed {
		c.segments = append(c.segments, segment{text: string(r)})
	} else {
		c.segments[n-1].text += string(r)
	}
	c.notify()
}

// ConfirmCurrentSelection confirms the current segment. Once every
// segment is confirmed the composition is committed and ends.
func (c *Context) ConfirmCurrentSelection() {
	if n := len(c.segments); n > 0 {
		c.segments[n-1].confirmed = true
	}
	for _, s := range c.segments {
		if !s.confirmed {
			c.notify()
			return
		}
	}
	c.Commit()
}

// ClearNonConfirmedComposition discards unconfirmed segments.
func (c *Context) ClearNonConfirmedComposition() {
	kept := c.segments[:0]
	for _, s := range c.segments {
		if s.confirmed {
			kept = append(kept, s)
		}
	}
	c.segments = kept
	c.notify()
}

// Commit finalizes the composition: the remaining text is delivered,
// recorded in the commit history, and composing ends.
func (c *Context) Commit() {
	text := c.Preedit()
	c.segments = nil
	if text != "" {
		c.history.Push(text)
		if c.deliver != nil {
			c.deliver(text)
		}
	}
	c.notify()
}

// Clear abandons the composition.
func (c *Context) Clear() {
	c.segments = nil
	c.notify()
}

// OnUpdate registers a callback invoked synchronously after every
// composition state change and returns its cancel function. The
// context keeps a single registration; subscribing replaces any prior
// one.
func (c *Context) OnUpdate(fn func()) (cancel func()) {
	h := &updateHandle{fn: fn}
	c.update = h
	return func() {
		if c.update == h {
			c.update = nil
		}
	}
}

func (c *Context) notify() {
	if c.update != nil {
		c.update.fn()
	}
}
