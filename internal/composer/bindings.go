package composer

import (
	"sort"

	"github.com/rs/zerolog"

	"inkstone/internal/input/key"
)

// Configuration paths consumed by the composer.
const (
	switchKeyPath       = "ascii_composer.switch_key"
	goodOldCapsLockPath = "ascii_composer.good_old_caps_lock"
)

// Keycode identifies an unmodified physical key for binding lookup:
// a named key, or a character key together with its rune.
type Keycode struct {
	Key  key.Key
	Rune rune
}

// KeycodeOf returns the binding identity of an event.
func KeycodeOf(e key.Event) Keycode {
	if e.Key == key.KeyRune {
		return Keycode{Key: key.KeyRune, Rune: e.Rune}
	}
	return Keycode{Key: e.Key}
}

var capsLockKeycode = Keycode{Key: key.KeyCapsLock}

// Bindings maps toggle keycodes to their switch styles. Only unmodified
// single keys are admitted.
type Bindings map[Keycode]SwitchStyle

// LoadBindings builds the switch-key table from configuration.
//
// Entries with an unrecognized style name are skipped silently; entries
// whose descriptor fails to parse, or parses with any modifier, are
// logged and skipped. Descriptors are visited in sorted order so that
// duplicates resolving to the same keycode have a deterministic winner.
// A missing table is a configuration error: the feature degrades to
// empty bindings, everything defers.
func LoadBindings(src Source, log zerolog.Logger) Bindings {
	raw, ok := src.StringMap(switchKeyPath)
	if !ok {
		log.Error().Str("path", switchKeyPath).Msg("missing ascii switch-key bindings")
		return Bindings{}
	}

	specs := make([]string, 0, len(raw))
	for spec := range raw {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	bindings := make(Bindings, len(raw))
	for _, spec := range specs {
		style, ok := StyleFromName(raw[spec])
		if !ok {
			continue
		}
		ev, err := key.Parse(spec)
		if err != nil {
			log.Warn().Err(err).Str("key", spec).Msg("invalid ascii mode switch key")
			continue
		}
		if !ev.Modifiers.IsEmpty() {
			log.Warn().Str("key", spec).Msg("ascii mode switch key must be unmodified")
			continue
		}
		bindings[KeycodeOf(ev)] = style
	}
	return bindings
}

// CapsLockStyle derives the Caps Lock switch style from the table:
// Noop when Caps Lock is unbound. A Caps Lock binding requesting
// inline_ascii is downgraded to clear; live inline conversion is
// incompatible with a hardware toggle key's press/release edges.
func (b Bindings) CapsLockStyle() SwitchStyle {
	style, ok := b[capsLockKeycode]
	if !ok {
		return StyleNoop
	}
	if style == StyleInlineAscii {
		return StyleClear
	}
	return style
}
