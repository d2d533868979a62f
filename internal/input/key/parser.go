package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec       = errors.New("empty key descriptor")
	ErrUnknownKey      = errors.New("unknown key")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// Parse parses a key descriptor string into a press Event.
//
// Supported formats:
//   - Named keys: "space", "Return", "Caps_Lock", "Shift_L", "Eisu_toggle"
//   - Single characters: "a", "`", ";"
//   - With modifiers: "Control+space", "Shift+Control+j"
//
// Single characters are taken literally; "A" parses as the rune 'A' with
// no modifiers.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A trailing "+" would split into an empty key part; a lone "+" is
	// the plus character itself.
	if !strings.Contains(spec, "+") || spec == "+" {
		return parseKey(spec, ModNone)
	}

	parts := strings.Split(spec, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownModifier, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseKey parses the key part of a descriptor with already-known
// modifiers.
func parseKey(part string, mods Modifier) (Event, error) {
	if part == "" {
		return Event{}, ErrEmptySpec
	}

	// "space" is the only named key that produces a character.
	if strings.EqualFold(part, "space") {
		ev := NewRuneEvent(' ', mods)
		return ev, nil
	}

	if k := KeyFromName(part); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(part)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, part)
}

// MustParse parses a key descriptor and panics on error.
// Use only for known-valid descriptors in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key descriptor: " + spec + ": " + err.Error())
	}
	return event
}
