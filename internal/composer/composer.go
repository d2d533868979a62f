package composer

import (
	"time"

	"github.com/rs/zerolog"

	"inkstone/internal/input/key"
)

// chordToggleWindow is how quickly a solitary Shift/Ctrl press must be
// released to count as a toggle gesture. Tunable heuristic; the default
// is deliberate.
const chordToggleWindow = 500 * time.Millisecond

// Composer decides, per key event, whether to toggle between native
// composition and literal ASCII input. See the package documentation
// for the processing cascade.
type Composer struct {
	ctx  Context
	sink TextSink
	log  zerolog.Logger
	now  func() time.Time

	bindings    Bindings
	capsStyle   SwitchStyle
	goodOldCaps bool

	// Chord-toggle detector state. chordDeadline is only meaningful
	// while shiftPressed or ctrlPressed is set.
	shiftPressed  bool
	ctrlPressed   bool
	chordDeadline time.Time

	// toggleWithCaps records whether the last mode toggle came from the
	// Caps Lock key.
	toggleWithCaps bool

	// cancelUpdate is the single-slot composition-update subscription.
	cancelUpdate func()
}

// New creates a composer bound to one session's context and loads its
// switch-key configuration from src.
func New(ctx Context, sink TextSink, src Source, log zerolog.Logger) *Composer {
	c := &Composer{
		ctx:  ctx,
		sink: sink,
		log:  log,
		now:  time.Now,
	}
	c.Reload(src)
	return c
}

// Reload rebuilds the composer state wholesale from configuration.
// Chord flags, the last-toggle marker and any live subscription are
// reset along with the binding table.
func (c *Composer) Reload(src Source) {
	c.cancelSubscription()
	c.shiftPressed = false
	c.ctrlPressed = false
	c.toggleWithCaps = false

	c.goodOldCaps = false
	if v, ok := src.Bool(goodOldCapsLockPath); ok {
		c.goodOldCaps = v
	}
	c.bindings = LoadBindings(src, c.log)
	c.capsStyle = c.bindings.CapsLockStyle()
}

// Close releases the composer's subscription. The composer must not be
// used afterwards.
func (c *Composer) Close() {
	c.cancelSubscription()
}

// Process routes one key event through the decision cascade and returns
// the verdict.
func (c *Composer) Process(e key.Event) Result {
	// Shift+Ctrl together, or Alt, or Super: never a toggle gesture.
	if (e.Modifiers.HasShift() && e.Modifiers.HasCtrl()) ||
		e.Modifiers.HasAlt() || e.Modifiers.HasSuper() {
		c.resetChord()
		c.tempAsciiOff()
		return Deferred
	}

	if c.capsStyle != StyleNoop {
		if result := c.processCapsLock(e); result != Deferred {
			return result
		}
	}

	if e.Key == key.KeyAlphaToggle {
		if e.Release {
			return Rejected
		}
		c.resetChord()
		c.toggleWithKey(KeycodeOf(e))
		return Accepted
	}

	if e.Key.IsShift() || e.Key.IsCtrl() {
		return c.processChord(e)
	}

	// Any other key consumes a pending chord.
	c.resetChord()

	if c.ctx.Option(OptionAsciiMode) {
		if !c.ctx.IsComposing() {
			return Rejected // direct commit
		}
		// Edit the inline ascii string.
		if !e.Release && e.IsPrintableASCII() {
			c.ctx.PushInput(e.Rune)
			return Accepted
		}
	}

	return c.processTempAscii(e)
}

// processChord tracks solitary Shift/Ctrl press-release timing so a
// quick tap acts as an alternate toggle gesture without disturbing
// Shift-for-capitals typing. The deadline is checked lazily here; no
// timer runs.
func (c *Composer) processChord(e key.Event) Result {
	if e.Release {
		if !c.shiftPressed && !c.ctrlPressed {
			return Deferred
		}
		matched := (e.Key.IsShift() && c.shiftPressed) ||
			(e.Key.IsCtrl() && c.ctrlPressed)
		if matched && c.now().Before(c.chordDeadline) {
			c.tempAsciiOff()
			if e.Key == key.KeyShiftRight {
				// Right Shift is an absolute switch, not a toggle.
				c.switchAsciiMode(true, StyleNoop)
			} else {
				c.toggleWithKey(KeycodeOf(e))
			}
		}
		c.resetChord()
		return Deferred
	}

	if !c.shiftPressed && !c.ctrlPressed { // first key down
		if e.Key.IsShift() {
			c.shiftPressed = true
		} else {
			// Ctrl usually starts a shortcut, not a toggle gesture.
			c.tempAsciiOff()
			c.ctrlPressed = true
		}
		// Will not toggle unless the key is released shortly.
		c.chordDeadline = c.now().Add(chordToggleWindow)
	}
	return Deferred
}

// toggleWithKey looks the keycode up in the binding table and, when
// bound, switches ascii mode to its inverse with the bound style.
// Returns false when the keycode is unbound and the caller must defer.
func (c *Composer) toggleWithKey(code Keycode) bool {
	style, ok := c.bindings[code]
	if !ok {
		return false
	}
	target := !c.ctx.Option(OptionAsciiMode)
	c.switchAsciiMode(target, style)
	c.toggleWithCaps = code == capsLockKeycode
	return true
}

func (c *Composer) resetChord() {
	c.shiftPressed = false
	c.ctrlPressed = false
}
