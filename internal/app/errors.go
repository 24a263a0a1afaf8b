package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates Run was called before a backend was set.
	ErrNoBackend = errors.New("no terminal backend set")

	// ErrAlreadyRunning indicates the event loop is already running.
	ErrAlreadyRunning = errors.New("application already running")
)
