package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/furkanonder/pico/internal/engine"
)

// loadEngine builds the editor state for path. A missing file starts an
// empty document; the file is created on the first save. Any other open
// or read failure is a hard failure.
func loadEngine(path string) (*engine.Engine, error) {
	if path == "" {
		return engine.New(), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return engine.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	e, err := engine.NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return e, nil
}

// save writes the document back to the file it was loaded from. Every
// line is followed by a line break except the last, so content loaded
// and saved unchanged stays identical byte for byte.
func (a *App) save() error {
	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", a.path, err)
	}

	n, err := a.eng.WriteTo(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", a.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", a.path, err)
	}

	a.log.Info("saved %s (%d bytes)", a.path, n)
	return nil
}
