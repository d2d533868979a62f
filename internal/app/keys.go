package app

import (
	"github.com/gdamore/tcell/v2"

	"inkstone/internal/input/key"
)

// Terminals deliver neither key releases, bare modifier presses nor the
// Caps Lock indicator, so the workbench synthesizes them: every
// keystroke becomes a press/release pair, and the function keys stand
// in for the gestures a real input method would see.
//
//	F2  Shift_L tap     F3  Shift_R tap    F4  Control_L tap
//	F5  Caps_Lock press F6  Eisu_toggle tap
func (a *App) translate(ev *tcell.EventKey) ([]key.Event, string) {
	switch ev.Key() {
	case tcell.KeyF2:
		return tap(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift)), "Shift_L tap"
	case tcell.KeyF3:
		return tap(key.NewSpecialEvent(key.KeyShiftRight, key.ModShift)), "Shift_R tap"
	case tcell.KeyF4:
		return tap(key.NewSpecialEvent(key.KeyCtrlLeft, key.ModCtrl)), "Control_L tap"
	case tcell.KeyF5:
		mods := key.ModNone
		if a.capsOn {
			mods = key.ModCaps
		}
		a.capsOn = !a.capsOn
		return tap(key.NewSpecialEvent(key.KeyCapsLock, mods)), "Caps_Lock press"
	case tcell.KeyF6:
		return tap(key.NewSpecialEvent(key.KeyAlphaToggle, key.ModNone)), "Eisu_toggle tap"
	}

	mods := translateMods(ev.Modifiers())
	if a.capsOn {
		mods = mods.With(key.ModCaps)
	}

	if k, ok := specialKeys[ev.Key()]; ok {
		return tap(key.NewSpecialEvent(k, mods)), ""
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a.capsOn {
			r = capsCase(r)
		}
		return tap(key.NewRuneEvent(r, mods)), ""
	}

	// tcell folds Ctrl+letter into dedicated key codes.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune(ev.Key()-tcell.KeyCtrlA) + 'a'
		return tap(key.NewRuneEvent(r, mods.With(key.ModCtrl))), ""
	}

	return nil, ""
}

// tap expands a press into a press/release pair.
func tap(press key.Event) []key.Event {
	return []key.Event{press, press.Released()}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}

// capsCase applies the simulated Caps Lock indicator to a letter the
// way the OS keyboard layer would.
func capsCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a'
	default:
		return r
	}
}
