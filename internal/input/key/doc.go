// Package key provides key identities, modifier bits and key events for
// the input-method core.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: Identifies a keyboard key (named keys, modifier keys, or runes)
//   - Modifier: Modifier state carried on an event (Shift, Ctrl, Alt,
//     Super, and the hardware Caps Lock indicator)
//   - Event: A single key press or release with modifiers
//
// # Key Descriptors
//
// Key descriptors are the strings used in switch-key configuration:
//
//   - Named keys: "space", "Return", "Caps_Lock", "Shift_L", "Eisu_toggle"
//   - Single characters: "a", "`", ";"
//   - With modifiers: "Control+space", "Shift+Control+j"
//
// Left and right variants of Shift, Control, Alt and Super are distinct
// keys: a solitary right-Shift tap is a different gesture from a left
// one, and the descriptor grammar keeps them apart.
package key
