package composer

import "inkstone/internal/input/key"

// processCapsLock owns Caps Lock key semantics. It runs only when a
// Caps Lock switch style is configured.
func (c *Composer) processCapsLock(e key.Event) Result {
	if e.Key == key.KeyCapsLock {
		if e.Release {
			return Rejected
		}
		c.resetChord()
		// Temporarily disable good-old (uppercase) Caps Lock as a mode
		// switch in case the user entered ascii mode with another key,
		// eg. with Shift.
		if c.goodOldCaps && !c.toggleWithCaps && c.ctx.Option(OptionAsciiMode) {
			return Rejected
		}
		// Whether the indicator reflects the pre- or post-toggle state
		// differs per platform; assume IBus behavior and invert.
		newState := !e.Modifiers.HasCaps()
		c.toggleWithCaps = newState
		c.switchAsciiMode(newState, c.capsStyle)
		return Accepted
	}

	if e.Modifiers.HasCaps() {
		if !c.goodOldCaps && !e.Release && !e.Modifiers.HasCtrl() && isASCIILetter(e) {
			// Output ascii characters ignoring Caps Lock: invert the
			// case the OS applied and commit the literal character.
			c.sink.CommitText(string(invertCase(e.Rune)))
			return Accepted
		}
		return Rejected
	}

	return Deferred
}

func isASCIILetter(e key.Event) bool {
	if !e.IsRune() {
		return false
	}
	return (e.Rune >= 'a' && e.Rune <= 'z') || (e.Rune >= 'A' && e.Rune <= 'Z')
}

func invertCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a'
	default:
		return r
	}
}
