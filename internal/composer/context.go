package composer

// Option names consumed on the composition context.
const (
	// OptionAsciiMode is the literal ASCII input mode.
	OptionAsciiMode = "ascii_mode"
	// OptionTempAscii is the transient ascii sub-mode. It is only
	// meaningful while OptionAsciiMode is false.
	OptionTempAscii = "temp_ascii"
)

// Context is the composition context the composer consumes. It is
// satisfied by the engine package's context and enables tests to
// substitute lightweight fakes.
type Context interface {
	// Option returns the named boolean option.
	Option(name string) bool
	// SetOption sets the named boolean option.
	SetOption(name string, on bool)

	// IsComposing reports whether a composition is under construction.
	IsComposing() bool

	// LatestCommit returns the most recent committed text segment, or
	// "" when the commit history is empty.
	LatestCommit() string
	// ClearCommitHistory empties the commit-history buffer.
	ClearCommitHistory()

	// Clear abandons the composition.
	Clear()
	// Commit finalizes the composition and delivers its text.
	Commit()
	// ConfirmCurrentSelection confirms the current best selection.
	ConfirmCurrentSelection()
	// ClearNonConfirmedComposition discards unconfirmed composition
	// content.
	ClearNonConfirmedComposition()
	// PushInput appends a literal character to the composition input.
	PushInput(r rune)

	// OnUpdate registers a callback invoked synchronously after every
	// context state change, and returns its cancel function.
	OnUpdate(fn func()) (cancel func())
}

// TextSink delivers finished text outward, bypassing composition.
// Used by the Caps Lock emulate-uppercase path.
type TextSink interface {
	CommitText(text string)
}

// Source provides the configuration the composer reads when it is
// constructed or reloaded. Lookups that find nothing report ok=false.
// Session-over-preset fallback is the source's concern; the config
// package's Stack layers sources for that purpose.
type Source interface {
	// Bool returns the boolean at a dotted path.
	Bool(path string) (value, ok bool)
	// StringMap returns the string-to-string table at a dotted path.
	StringMap(path string) (value map[string]string, ok bool)
}
