package engine

// Engine owns a session's composition context and delivers finished
// text to an output function.
type Engine struct {
	ctx  *Context
	sink func(text string)
}

// New creates an engine delivering committed text to sink. A nil sink
// discards output.
func New(sink func(text string)) *Engine {
	if sink == nil {
		sink = func(string) {}
	}
	e := &Engine{sink: sink}
	e.ctx = newContext(e.sink)
	return e
}

// Context returns the session's composition context.
func (e *Engine) Context() *Context {
	return e.ctx
}

// CommitText delivers literal text directly, bypassing composition and
// the commit history.
func (e *Engine) CommitText(text string) {
	e.sink(text)
}
