package key

import (
	"fmt"
	"time"
)

// Event represents a single key press or release.
// Events are immutable values; helpers that vary an event return a copy.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the modifier state at the time of the event,
	// including the Caps Lock indicator.
	Modifiers Modifier

	// Release is true for key-up events.
	Release bool

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a press event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Released returns a copy of the event marked as a key-up.
func (e Event) Released() Event {
	e.Release = true
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintableASCII returns true if the event carries a printable ASCII
// character (space through tilde). Named keys are never printable.
func (e Event) IsPrintableASCII() bool {
	return e.IsRune() && e.Rune >= 0x20 && e.Rune <= 0x7e
}

// IsLowerASCII returns true for a plain lowercase ASCII letter.
func (e Event) IsLowerASCII() bool {
	return e.IsRune() && e.Rune >= 'a' && e.Rune <= 'z'
}

// IsSpace returns true for the space character.
func (e Event) IsSpace() bool {
	return e.IsRune() && e.Rune == ' '
}

// Equals returns true if two events represent the same key transition.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers &&
		e.Release == other.Release
}

// String returns a canonical representation like "space", "Shift_L up"
// or "Control+j".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "space"
		} else {
			name = string(e.Rune)
		}
	}
	if mods := e.Modifiers.Without(ModCaps); !mods.IsEmpty() {
		name = mods.String() + "+" + name
	}
	if e.Release {
		name += " up"
	}
	return name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Release: %v}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Release)
}
