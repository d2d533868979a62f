package composer

import (
	"testing"

	"github.com/rs/zerolog"

	"inkstone/internal/input/key"
)

func loadTestBindings(switchKey map[string]string) Bindings {
	return LoadBindings(mapSource{switchKey: switchKey}, zerolog.Nop())
}

func TestLoadBindings(t *testing.T) {
	b := loadTestBindings(map[string]string{
		"space":     "inline_ascii",
		"Shift_L":   "inline_ascii",
		"Caps_Lock": "commit_code",
		"Return":    "clear",
	})

	tests := []struct {
		name string
		code Keycode
		want SwitchStyle
	}{
		{"rune key", Keycode{Key: key.KeyRune, Rune: ' '}, StyleInlineAscii},
		{"named modifier key", Keycode{Key: key.KeyShiftLeft}, StyleInlineAscii},
		{"caps lock", Keycode{Key: key.KeyCapsLock}, StyleCommitCode},
		{"named key alias", Keycode{Key: key.KeyEnter}, StyleClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b[tt.code]
			if !ok {
				t.Fatalf("binding for %+v not loaded", tt.code)
			}
			if got != tt.want {
				t.Errorf("style = %v, want %v", got, tt.want)
			}
		})
	}
	if len(b) != 4 {
		t.Errorf("len(bindings) = %d, want 4", len(b))
	}
}

func TestLoadBindingsSkipsBadEntries(t *testing.T) {
	b := loadTestBindings(map[string]string{
		"Shift+space": "inline_ascii", // modified descriptors are invalid
		"Control+j":   "clear",
		"NoSuchKey":   "clear",
		"Shift_L":     "bogus_style",
		"":            "clear",
	})
	if len(b) != 0 {
		t.Errorf("bindings = %v, want all entries skipped", b)
	}
}

func TestLoadBindingsMissingTable(t *testing.T) {
	b := LoadBindings(mapSource{}, zerolog.Nop())
	if b == nil {
		t.Fatal("missing table should degrade to empty bindings, not nil")
	}
	if len(b) != 0 {
		t.Errorf("bindings = %v, want empty", b)
	}
}

func TestKeycodeOf(t *testing.T) {
	rune1 := KeycodeOf(key.NewRuneEvent('a', key.ModNone))
	rune2 := KeycodeOf(key.NewRuneEvent('a', key.ModShift))
	if rune1 != rune2 {
		t.Error("binding identity must ignore modifier state")
	}
	if rune1 == KeycodeOf(key.NewRuneEvent('b', key.ModNone)) {
		t.Error("distinct runes must have distinct identities")
	}
	if KeycodeOf(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift)) ==
		KeycodeOf(key.NewSpecialEvent(key.KeyShiftRight, key.ModShift)) {
		t.Error("left and right shift must have distinct identities")
	}
}

func TestCapsLockStyle(t *testing.T) {
	tests := []struct {
		name      string
		switchKey map[string]string
		want      SwitchStyle
	}{
		{"unbound", map[string]string{"Shift_L": "clear"}, StyleNoop},
		{"clear", map[string]string{"Caps_Lock": "clear"}, StyleClear},
		{"commit_text", map[string]string{"Caps_Lock": "commit_text"}, StyleCommitText},
		{"inline_ascii coerced", map[string]string{"Caps_Lock": "inline_ascii"}, StyleClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loadTestBindings(tt.switchKey).CapsLockStyle(); got != tt.want {
				t.Errorf("CapsLockStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}
