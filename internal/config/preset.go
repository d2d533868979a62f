package config

// defaultPreset is the shared preset compiled into the binary. Session
// configuration overrides it path by path through a Stack. The noop
// entries deliberately leave Control taps unbound.
const defaultPreset = `
[ascii_composer]
good_old_caps_lock = true

[ascii_composer.switch_key]
Caps_Lock = "clear"
Shift_L = "inline_ascii"
Shift_R = "commit_text"
Control_L = "noop"
Control_R = "noop"
`

// DefaultPreset returns the built-in shared preset.
func DefaultPreset() *Source {
	s, err := Parse([]byte(defaultPreset))
	if err != nil {
		panic("invalid built-in preset: " + err.Error())
	}
	return s
}
