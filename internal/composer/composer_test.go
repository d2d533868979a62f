package composer

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"inkstone/internal/input/key"
)

// fakeContext records every composition call the composer makes.
type fakeContext struct {
	options       map[string]bool
	composing     bool
	latest        string
	historyClears int
	pushed        []rune
	confirms      int
	clearPartials int
	commits       int
	clears        int
	update        func()
	cancels       int
}

func newFakeContext() *fakeContext {
	return &fakeContext{options: make(map[string]bool)}
}

func (c *fakeContext) Option(name string) bool        { return c.options[name] }
func (c *fakeContext) SetOption(name string, on bool) { c.options[name] = on }
func (c *fakeContext) IsComposing() bool              { return c.composing }
func (c *fakeContext) LatestCommit() string           { return c.latest }
func (c *fakeContext) ClearCommitHistory()            { c.historyClears++; c.latest = "" }
func (c *fakeContext) Clear()                         { c.clears++; c.composing = false }
func (c *fakeContext) Commit()                        { c.commits++; c.composing = false }
func (c *fakeContext) ConfirmCurrentSelection()       { c.confirms++; c.composing = false }
func (c *fakeContext) ClearNonConfirmedComposition()  { c.clearPartials++ }
func (c *fakeContext) PushInput(r rune)               { c.pushed = append(c.pushed, r) }

func (c *fakeContext) OnUpdate(fn func()) func() {
	c.update = fn
	return func() {
		c.cancels++
		c.update = nil
	}
}

func (c *fakeContext) fireUpdate() {
	if c.update != nil {
		c.update()
	}
}

type fakeSink struct{ texts []string }

func (s *fakeSink) CommitText(text string) { s.texts = append(s.texts, text) }

// mapSource is an in-memory Source for tests.
type mapSource struct {
	switchKey  map[string]string
	goodOld    bool
	hasGoodOld bool
}

func (s mapSource) Bool(path string) (bool, bool) {
	if path == goodOldCapsLockPath && s.hasGoodOld {
		return s.goodOld, true
	}
	return false, false
}

func (s mapSource) StringMap(path string) (map[string]string, bool) {
	if path == switchKeyPath && s.switchKey != nil {
		return s.switchKey, true
	}
	return nil, false
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestComposer(ctx Context, sink TextSink, src Source) (*Composer, *fakeClock) {
	c := New(ctx, sink, src, zerolog.Nop())
	clk := &fakeClock{t: time.Unix(1700000000, 0)}
	c.now = clk.now
	return c, clk
}

func TestShiftCtrlComboDefersAndExitsTempAscii(t *testing.T) {
	ctx := newFakeContext()
	ctx.options[OptionTempAscii] = true
	c, _ := newTestComposer(ctx, &fakeSink{}, mapSource{switchKey: map[string]string{}})

	e := key.NewRuneEvent('a', key.ModShift|key.ModCtrl)
	if got := c.Process(e); got != Deferred {
		t.Errorf("Process(Shift+Ctrl combo) = %v, want Deferred", got)
	}
	if ctx.options[OptionTempAscii] {
		t.Error("temp_ascii should be exited by a Shift+Ctrl combo")
	}
	if ctx.historyClears != 1 {
		t.Errorf("historyClears = %d, want 1", ctx.historyClears)
	}
}

func TestAltComboCancelsPendingChord(t *testing.T) {
	ctx := newFakeContext()
	c, clk := newTestComposer(ctx, &fakeSink{}, mapSource{
		switchKey: map[string]string{"Shift_L": "inline_ascii"},
	})

	c.Process(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift))
	if got := c.Process(key.NewRuneEvent('x', key.ModAlt)); got != Deferred {
		t.Errorf("Process(Alt combo) = %v, want Deferred", got)
	}
	clk.advance(100 * time.Millisecond)
	c.Process(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift).Released())

	if ctx.options[OptionAsciiMode] {
		t.Error("chord interrupted by a combo must not toggle ascii mode")
	}
}

func TestAlphaToggle(t *testing.T) {
	ctx := newFakeContext()
	c, _ := newTestComposer(ctx, &fakeSink{}, mapSource{
		switchKey: map[string]string{"Eisu_toggle": "commit_text"},
	})

	press := key.NewSpecialEvent(key.KeyAlphaToggle, key.ModNone)
	if got := c.Process(press); got != Accepted {
		t.Errorf("Process(Eisu_toggle) = %v, want Accepted", got)
	}
	if !ctx.options[OptionAsciiMode] {
		t.Error("Eisu_toggle press should toggle ascii mode on")
	}
	if got := c.Process(press.Released()); got != Rejected {
		t.Errorf("Process(Eisu_toggle up) = %v, want Rejected", got)
	}
	if !ctx.options[OptionAsciiMode] {
		t.Error("Eisu_toggle release must not toggle again")
	}
	if got := c.Process(press); got != Accepted || ctx.options[OptionAsciiMode] {
		t.Errorf("second press: result = %v, ascii = %v, want Accepted and off",
			got, ctx.options[OptionAsciiMode])
	}
}

func TestAlphaToggleUnboundStillAccepted(t *testing.T) {
	ctx := newFakeContext()
	c, _ := newTestComposer(ctx, &fakeSink{}, mapSource{switchKey: map[string]string{}})

	if got := c.Process(key.NewSpecialEvent(key.KeyAlphaToggle, key.ModNone)); got != Accepted {
		t.Errorf("Process(unbound Eisu_toggle) = %v, want Accepted", got)
	}
	if ctx.options[OptionAsciiMode] {
		t.Error("unbound Eisu_toggle must not change ascii mode")
	}
}

func TestAsciiModeDirectCommit(t *testing.T) {
	ctx := newFakeContext()
	ctx.options[OptionAsciiMode] = true
	c, _ := newTestComposer(ctx, &fakeSink{}, mapSource{switchKey: map[string]string{}})

	if got := c.Process(key.NewRuneEvent('x', key.ModNone)); got != Rejected {
		t.Errorf("Process('x') in idle ascii mode = %v, want Rejected", got)
	}
	if len(ctx.pushed) != 0 {
		t.Errorf("pushed = %v, want none in direct-commit mode", ctx.pushed)
	}
}

func TestAsciiModeInlineEdit(t *testing.T) {
	ctx := newFakeContext()
	ctx.options[OptionAsciiMode] = true
	ctx.composing = true
	c, _ := newTestComposer(ctx, &fakeSink{}, mapSource{switchKey: map[string]string{}})

	press := key.NewRuneEvent('x', key.ModNone)
	if got := c.Process(press); got != Accepted {
		t.Errorf("Process('x') while composing inline = %v, want Accepted", got)
	}
	if len(ctx.pushed) != 1 || ctx.pushed[0] != 'x' {
		t.Errorf("pushed = %v, want [x]", ctx.pushed)
	}
	if got := c.Process(press.Released()); got != Deferred {
		t.Errorf("Process('x' up) = %v, want Deferred", got)
	}
	if got := c.Process(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)); got != Deferred {
		t.Errorf("Process(Backspace) while composing inline = %v, want Deferred", got)
	}
	if len(ctx.pushed) != 1 {
		t.Errorf("pushed = %v, non-printable keys must not push input", ctx.pushed)
	}
}

func TestReloadReplacesBindingsAndResetsState(t *testing.T) {
	ctx := newFakeContext()
	c, clk := newTestComposer(ctx, &fakeSink{}, mapSource{
		switchKey: map[string]string{"Shift_L": "inline_ascii"},
	})

	// Leave a chord pending, then reload with Shift_L unbound.
	c.Process(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift))
	c.Reload(mapSource{switchKey: map[string]string{"Shift_R": "commit_text"}})

	clk.advance(100 * time.Millisecond)
	c.Process(key.NewSpecialEvent(key.KeyShiftLeft, key.ModShift).Released())
	if ctx.options[OptionAsciiMode] {
		t.Error("pending chord must not survive a reload")
	}

	tapShift(c, clk, key.KeyShiftRight)
	if !ctx.options[OptionAsciiMode] {
		t.Error("binding added by reload should take effect")
	}
}

// tapShift presses and quickly releases a shift key.
func tapShift(c *Composer, clk *fakeClock, k key.Key) {
	c.Process(key.NewSpecialEvent(k, key.ModShift))
	clk.advance(100 * time.Millisecond)
	c.Process(key.NewSpecialEvent(k, key.ModShift).Released())
}
