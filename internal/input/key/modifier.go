package key

import "strings"

// Modifier represents modifier state carried on a key event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the Super key (Win key, Cmd on macOS).
	ModSuper

	// ModCaps indicates the hardware Caps Lock indicator. It is state,
	// not a held key: whether it reflects the pre- or post-toggle state
	// of a Caps Lock press differs per platform.
	ModCaps
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasSuper returns true if Super is held.
func (m Modifier) HasSuper() bool {
	return m.Has(ModSuper)
}

// HasCaps returns true if the Caps Lock indicator is lit.
func (m Modifier) HasCaps() bool {
	return m.Has(ModCaps)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Control+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasCtrl() {
		parts = append(parts, "Control")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	if m.HasCaps() {
		parts = append(parts, "Caps")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
	"cmd":     ModSuper,
}

// ModifierFromName returns the Modifier for a given name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
