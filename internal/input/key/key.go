package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Lock keys
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// Modifier keys. Left and right variants are distinct identities;
	// chord detection cares which shift was tapped.
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlLeft
	KeyCtrlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight

	// KeyAlphaToggle is the dedicated alphanumeric-toggle key found on
	// Japanese keyboards (Eisu_toggle).
	KeyAlphaToggle

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Return"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCapsLock:
		return "Caps_Lock"
	case KeyNumLock:
		return "Num_Lock"
	case KeyScrollLock:
		return "Scroll_Lock"
	case KeyShiftLeft:
		return "Shift_L"
	case KeyShiftRight:
		return "Shift_R"
	case KeyCtrlLeft:
		return "Control_L"
	case KeyCtrlRight:
		return "Control_R"
	case KeyAltLeft:
		return "Alt_L"
	case KeyAltRight:
		return "Alt_R"
	case KeySuperLeft:
		return "Super_L"
	case KeySuperRight:
		return "Super_R"
	case KeyAlphaToggle:
		return "Eisu_toggle"
	case KeyRune:
		return "Rune"
	default:
		if k.IsFunctionKey() {
			return fmt.Sprintf("F%d", k-KeyF1+1)
		}
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a named (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsShift returns true for either Shift key.
func (k Key) IsShift() bool {
	return k == KeyShiftLeft || k == KeyShiftRight
}

// IsCtrl returns true for either Control key.
func (k Key) IsCtrl() bool {
	return k == KeyCtrlLeft || k == KeyCtrlRight
}

// IsModifierKey returns true if this key is itself a modifier
// (Shift, Control, Alt or Super, either side).
func (k Key) IsModifierKey() bool {
	return k >= KeyShiftLeft && k <= KeySuperRight
}

// keyNameMap maps key names (lowercase) to Key values.
// X11 keysym names are included because switch-key descriptors in the
// wild use them ("Caps_Lock", "Shift_L", "Eisu_toggle").
var keyNameMap = map[string]Key{
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"tab":         KeyTab,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"insert":      KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"prior":       KeyPageUp,
	"pagedown":    KeyPageDown,
	"next":        KeyPageDown,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
	"caps_lock":   KeyCapsLock,
	"capslock":    KeyCapsLock,
	"num_lock":    KeyNumLock,
	"scroll_lock": KeyScrollLock,
	"shift_l":     KeyShiftLeft,
	"shift_r":     KeyShiftRight,
	"control_l":   KeyCtrlLeft,
	"control_r":   KeyCtrlRight,
	"alt_l":       KeyAltLeft,
	"alt_r":       KeyAltRight,
	"super_l":     KeySuperLeft,
	"super_r":     KeySuperRight,
	"eisu_toggle": KeyAlphaToggle,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
