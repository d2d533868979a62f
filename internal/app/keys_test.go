package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"inkstone/internal/input/key"
)

func TestTranslateRune(t *testing.T) {
	a := &App{}
	events, _ := a.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want press/release pair", len(events))
	}
	want := key.NewRuneEvent('x', key.ModNone)
	if !events[0].Equals(want) {
		t.Errorf("press = %#v, want %#v", events[0], want)
	}
	if !events[1].Equals(want.Released()) {
		t.Errorf("release = %#v, want %#v", events[1], want.Released())
	}
}

func TestTranslateCapsIndicator(t *testing.T) {
	a := &App{capsOn: true}
	events, _ := a.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	want := key.NewRuneEvent('X', key.ModCaps)
	if !events[0].Equals(want) {
		t.Errorf("press = %#v, want uppercased rune with caps set", events[0])
	}
}

func TestTranslateCapsLockKeyFlipsIndicator(t *testing.T) {
	a := &App{}
	events, _ := a.translate(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if !events[0].Equals(key.NewSpecialEvent(key.KeyCapsLock, key.ModNone)) {
		t.Errorf("press = %#v, want Caps_Lock with pre-toggle indicator", events[0])
	}
	if !a.capsOn {
		t.Error("F5 should flip the simulated indicator on")
	}

	events, _ = a.translate(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if !events[0].Equals(key.NewSpecialEvent(key.KeyCapsLock, key.ModCaps)) {
		t.Errorf("press = %#v, want Caps_Lock with indicator lit", events[0])
	}
	if a.capsOn {
		t.Error("second F5 should flip the indicator back off")
	}
}

func TestTranslateGestureKeys(t *testing.T) {
	tests := []struct {
		name string
		in   tcell.Key
		want key.Event
	}{
		{"F2 left shift", tcell.KeyF2, key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift)},
		{"F3 right shift", tcell.KeyF3, key.NewSpecialEvent(key.KeyShiftRight, key.ModShift)},
		{"F4 control", tcell.KeyF4, key.NewSpecialEvent(key.KeyCtrlLeft, key.ModCtrl)},
		{"F6 alpha toggle", tcell.KeyF6, key.NewSpecialEvent(key.KeyAlphaToggle, key.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{}
			events, _ := a.translate(tcell.NewEventKey(tt.in, 0, tcell.ModNone))
			if len(events) != 2 || !events[0].Equals(tt.want) || !events[1].Equals(tt.want.Released()) {
				t.Errorf("translate(%v) = %#v, want tap of %#v", tt.in, events, tt.want)
			}
		})
	}
}

func TestTranslateNamedKeys(t *testing.T) {
	a := &App{}
	events, _ := a.translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !events[0].Equals(key.NewSpecialEvent(key.KeyEnter, key.ModNone)) {
		t.Errorf("press = %#v, want Return", events[0])
	}

	events, _ = a.translate(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if !events[0].Equals(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)) {
		t.Errorf("press = %#v, want Backspace", events[0])
	}
}

func TestTranslateCtrlLetter(t *testing.T) {
	a := &App{}
	events, _ := a.translate(tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl))
	want := key.NewRuneEvent('j', key.ModCtrl)
	if !events[0].Equals(want) {
		t.Errorf("press = %#v, want %#v", events[0], want)
	}
}

func TestTranslateModifierMask(t *testing.T) {
	got := translateMods(tcell.ModShift | tcell.ModAlt | tcell.ModMeta)
	want := key.ModShift | key.ModAlt | key.ModSuper
	if got != want {
		t.Errorf("translateMods = %v, want %v", got, want)
	}
}
