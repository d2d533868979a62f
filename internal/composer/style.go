package composer

// SwitchStyle is the composition-level side effect applied when ascii
// mode changes while a composition is in progress.
type SwitchStyle uint8

const (
	// StyleNoop leaves the composition untouched.
	StyleNoop SwitchStyle = iota
	// StyleInlineAscii converts the live composition in place and
	// auto-reverts when composing ends.
	StyleInlineAscii
	// StyleCommitText confirms the current best selection, ending the
	// composition.
	StyleCommitText
	// StyleCommitCode discards unconfirmed composition content and
	// commits the remainder.
	StyleCommitCode
	// StyleClear abandons the composition.
	StyleClear
)

// styleNames is the fixed vocabulary recognized in switch-key
// configuration. Names outside it are skipped silently.
var styleNames = map[string]SwitchStyle{
	"inline_ascii": StyleInlineAscii,
	"commit_text":  StyleCommitText,
	"commit_code":  StyleCommitCode,
	"clear":        StyleClear,
}

// StyleFromName resolves a configured style name.
func StyleFromName(name string) (SwitchStyle, bool) {
	s, ok := styleNames[name]
	return s, ok
}

// String returns the configuration name of the style.
func (s SwitchStyle) String() string {
	switch s {
	case StyleNoop:
		return "noop"
	case StyleInlineAscii:
		return "inline_ascii"
	case StyleCommitText:
		return "commit_text"
	case StyleCommitCode:
		return "commit_code"
	case StyleClear:
		return "clear"
	default:
		return "unknown"
	}
}
