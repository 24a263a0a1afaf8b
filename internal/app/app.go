// Package app wires the engine, viewport, and renderer together and
// runs the editor's event loop: read one decoded event, apply at most
// one mutation, adjust the viewport, redraw.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/furkanonder/pico/internal/config"
	"github.com/furkanonder/pico/internal/engine"
	"github.com/furkanonder/pico/internal/input/key"
	"github.com/furkanonder/pico/internal/renderer"
	"github.com/furkanonder/pico/internal/renderer/backend"
	"github.com/furkanonder/pico/internal/renderer/statusline"
	"github.com/furkanonder/pico/internal/renderer/viewport"
)

// Options configures the application.
type Options struct {
	// Path is the file being edited.
	Path string

	// Config carries the editor settings; zero value means defaults.
	Config config.Config

	// Logger receives diagnostics. Nil means no logging.
	Logger *Logger
}

// App is the running editor. It owns the editor state exclusively;
// everything is mutated from the single event loop in Run.
type App struct {
	cfg  config.Config
	log  *Logger
	path string

	eng     *engine.Engine
	vp      *viewport.Viewport
	status  *statusline.StatusLine
	rend    *renderer.Renderer
	backend backend.Backend

	running bool
}

// New creates an application editing the file at opts.Path.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = NullLogger
	}

	eng, err := loadEngine(opts.Path)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		path:   opts.Path,
		eng:    eng,
		status: statusline.New(),
	}
	if opts.Path != "" {
		a.status.SetFilename(filepath.Base(opts.Path))
	}
	a.vp = viewport.New(cfg.FallbackRows-1, cfg.FallbackCols, cfg.ScrollMargin)
	return a, nil
}

// SetBackend attaches the terminal backend the editor draws to.
func (a *App) SetBackend(b backend.Backend) {
	a.backend = b
	a.rend = renderer.New(b)
}

// Engine returns the editor state, for inspection in tests.
func (a *App) Engine() *engine.Engine {
	return a.eng
}

// Run initializes the backend and drives the event loop until a quit
// event arrives (returned as ErrQuit) or a hard failure occurs. The
// loop is synchronous: no mutation overlaps another, and every
// mutation is followed by a full viewport adjust and redraw.
func (a *App) Run() error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if a.running {
		return ErrAlreadyRunning
	}
	a.running = true
	defer func() { a.running = false }()

	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}

	a.layout(a.backend.Size())
	a.redraw()

	for {
		ev := key.Translate(a.backend.PollEvent(a.cfg.PollTimeout))
		if ev.Kind == key.None {
			continue
		}
		if err := a.apply(ev); err != nil {
			return err
		}
		a.redraw()
	}
}

// Shutdown restores the terminal. Safe to call after Run returns.
func (a *App) Shutdown() {
	if a.backend != nil {
		a.backend.Fini()
	}
}

// apply performs the mutation for one decoded event. Save and quit
// follow the fatal error policy: a failed save is returned as a hard
// failure rather than retried.
func (a *App) apply(ev key.Event) error {
	switch ev.Kind {
	case key.Quit:
		a.log.Info("quit")
		return ErrQuit
	case key.Save:
		return a.save()
	case key.Resize:
		a.log.Debug("resize to %dx%d", ev.Cols, ev.Rows)
		a.layout(ev.Cols, ev.Rows)
	case key.Printable:
		a.eng.InsertChar(ev.Ch)
	case key.Enter:
		a.eng.InsertNewline()
	case key.Backspace:
		a.eng.DeleteChar()
	case key.MoveUp:
		a.eng.MoveUp()
	case key.MoveDown:
		a.eng.MoveDown()
	case key.MoveLeft:
		a.eng.MoveLeft()
	case key.MoveRight:
		a.eng.MoveRight()
	}
	return nil
}

// layout sizes the text area to the terminal, reserving the bottom row
// for the status line.
func (a *App) layout(cols, rows int) {
	textRows := rows - 1
	if textRows < 1 {
		textRows = 1
	}
	a.vp.Resize(textRows, cols)
	a.status.SetTerminalSize(cols, textRows)
}

// redraw adjusts the viewport to the cursor and renders a full frame.
func (a *App) redraw() {
	c := a.eng.Cursor()
	a.vp.Adjust(c)
	a.status.SetPosition(c.Row, c.Col)
	a.rend.Draw(a.eng.Document(), c, a.vp, a.status)
}
