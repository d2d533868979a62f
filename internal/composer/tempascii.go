package composer

import (
	"strings"

	"inkstone/internal/input/key"
)

// Transform punctuation sets for the temporary-ascii heuristic.
// Tunable; the defaults are deliberate.
const (
	// transformAlways: characters eligible for transformation in both
	// normal and temp-ascii mode, or that leave temp-ascii mode.
	transformAlways = `,^\"!?;`
	// transformOptional: characters additionally eligible only while
	// not in temp-ascii mode. These show up inside identifiers and
	// expressions (namespace.method, pointer->member, a[4]) and must
	// not drag an idle session into temp-ascii.
	transformOptional = `.'<>:()[]{}`
)

// transformable reports whether ch may be handled by a downstream
// transformer rather than entering temp-ascii mode.
func transformable(ch rune, optional bool) bool {
	if strings.ContainsRune(transformAlways, ch) {
		return true
	}
	return optional && strings.ContainsRune(transformOptional, ch)
}

// processTempAscii is the final arbiter of the cascade: a small state
// machine inferring a short run of literal ASCII typing without an
// explicit toggle, auto-reverting afterward. Entry is conservative
// while idle but liberal about pass-through once already composing.
func (c *Composer) processTempAscii(e key.Event) Result {
	if e.Release || e.Key == key.KeyBackspace || e.Key == key.KeyDelete {
		return Deferred
	}

	composing := c.ctx.IsComposing()

	// Shift+space commits a forced space regardless of mode.
	if !composing && e.IsSpace() && e.Modifiers.HasShift() {
		return Deferred
	}

	if c.ctx.Option(OptionTempAscii) {
		// A Return mid-composition must not accidentally disable the
		// temp mode.
		if composing {
			return Deferred
		}
		if e.IsSpace() || !e.IsPrintableASCII() || transformable(e.Rune, false) {
			// Let the downstream transformers do their work.
			c.tempAsciiOff()
			return Deferred
		}
		return Rejected
	}

	if composing {
		// Return triggers entry when the latest committed run was
		// plain ASCII.
		if e.Key == key.KeyEnter && isPrintableASCIIText(c.ctx.LatestCommit()) {
			c.tempAsciiOn()
		}
		return Deferred
	}

	// Idle and not in temp-ascii: consider few keys to turn the mode
	// on, without damaging the typing experience.
	if e.IsLowerASCII() || !e.IsPrintableASCII() || transformable(e.Rune, true) {
		return Deferred
	}

	// Uppercase, digits, +-*/ and the rest trigger, including space.
	c.tempAsciiOn()
	return Rejected
}

// tempAsciiOn clears the commit history alongside the flag to avoid a
// stale Return trigger on the next composition.
func (c *Composer) tempAsciiOn() {
	c.ctx.SetOption(OptionTempAscii, true)
	c.ctx.ClearCommitHistory()
}

func (c *Composer) tempAsciiOff() {
	c.ctx.SetOption(OptionTempAscii, false)
	c.ctx.ClearCommitHistory()
}

// isPrintableASCIIText reports whether every byte of s is printable
// ASCII. The empty string qualifies.
func isPrintableASCIIText(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
