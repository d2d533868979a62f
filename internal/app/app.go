// Package app wires the composer, engine and configuration into an
// interactive terminal workbench. Each keystroke is run through the
// composer and the verdict decides who consumes it.
package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"inkstone/internal/composer"
	"inkstone/internal/config"
	"inkstone/internal/engine"
	"inkstone/internal/input/key"
	"inkstone/internal/logging"
)

// ErrQuit is returned by Run when the user quits normally.
var ErrQuit = errors.New("quit")

// Options configures the application.
type Options struct {
	// ConfigPath is the session configuration file. Empty runs on the
	// built-in preset alone.
	ConfigPath string

	// Watch reloads the configuration file when it changes on disk.
	Watch bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// App is the running workbench.
type App struct {
	opts Options
	log  zerolog.Logger

	eng  *engine.Engine
	comp *composer.Composer

	screen  tcell.Screen
	watcher *config.Watcher

	// pending holds a freshly loaded session config until the event
	// loop picks it up.
	mu      sync.Mutex
	pending *config.Source

	// capsOn simulates the hardware Caps Lock indicator; terminals do
	// not report it.
	capsOn bool

	committed strings.Builder
	lastNote  string
}

// New builds the application. The terminal is not touched until Run.
func New(opts Options) (*App, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	log := logging.New(cfg)

	a := &App{opts: opts, log: log}
	a.eng = engine.New(a.deliver)

	src, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	a.comp = composer.New(a.eng.Context(), a.eng, src, log)

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, a.onConfigChange, log)
		if err != nil {
			return nil, fmt.Errorf("watch config: %w", err)
		}
		a.watcher = w
	}
	return a, nil
}

// loadConfig stacks the session file, when given, over the preset.
func (a *App) loadConfig() (composer.Source, error) {
	if a.opts.ConfigPath == "" {
		return config.DefaultPreset(), nil
	}
	session, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return config.NewStack(session, config.DefaultPreset()), nil
}

func (a *App) onConfigChange(src *config.Source) {
	a.mu.Lock()
	a.pending = src
	a.mu.Unlock()
	if a.screen != nil {
		// Wake the event loop.
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (a *App) deliver(text string) {
	a.committed.WriteString(text)
}

// Shutdown releases the terminal and all resources. Safe to call more
// than once.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.comp != nil {
		a.comp.Close()
	}
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
}

// Run owns the terminal until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen

	for {
		a.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return ErrQuit
			}
			a.handleKey(ev)
		case *tcell.EventInterrupt:
			a.applyPendingConfig()
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}

func (a *App) applyPendingConfig() {
	a.mu.Lock()
	session := a.pending
	a.pending = nil
	a.mu.Unlock()
	if session == nil {
		return
	}
	a.comp.Reload(config.NewStack(session, config.DefaultPreset()))
	a.lastNote = "config reloaded"
}

// handleKey translates one terminal keystroke, runs it through the
// composer as a press/release pair and routes each press by verdict:
// accepted keys are done, rejected keys pass straight through, deferred
// keys feed the demo composition.
func (a *App) handleKey(ev *tcell.EventKey) {
	events, note := a.translate(ev)
	if note != "" {
		a.lastNote = note
	}
	for _, e := range events {
		verdict := a.comp.Process(e)
		if e.Release {
			continue
		}
		a.lastNote = fmt.Sprintf("%v: %v", e, verdict)
		switch verdict {
		case composer.Rejected:
			a.passThrough(e)
		case composer.Deferred:
			a.feedComposition(e)
		}
	}
}

// passThrough consumes keys the composer bounced back to the session:
// literal characters go straight to the output.
func (a *App) passThrough(e key.Event) {
	if e.IsPrintableASCII() {
		a.committed.WriteString(string(e.Rune))
	}
}

// feedComposition is the stand-in for a full input schema: deferred
// printable keys build the composition, Return commits, Escape clears.
func (a *App) feedComposition(e key.Event) {
	ctx := a.eng.Context()
	switch {
	case e.Key == key.KeyEnter:
		ctx.Commit()
	case e.Key == key.KeyEscape:
		ctx.Clear()
	case e.IsPrintableASCII() && e.Modifiers.Without(key.ModShift|key.ModCaps).IsEmpty():
		ctx.PushInput(e.Rune)
	}
}
