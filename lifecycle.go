package godism

// This file contains the process-wide lifecycle of the DISM engine.

import (
	"context"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/flags"
)

type initOptions struct {
	logLevel   LogLevel
	logFile    string
	scratchDir string
}

// InitOption customizes the engine initialization.
type InitOption func(*initOptions)

// WithLogLevel selects how much the engine logs. The default is to log
// everything down to informational messages.
func WithLogLevel(level LogLevel) InitOption {
	return func(o *initOptions) {
		o.logLevel = level
	}
}

// WithLogFile redirects the engine's log away from the default
// %WINDIR%\Logs\DISM\dism.log.
func WithLogFile(path string) InitOption {
	return func(o *initOptions) {
		o.logFile = path
	}
}

// WithScratchDir relocates the engine's working files. The directory must
// exist.
func WithScratchDir(path string) InitOption {
	return func(o *initOptions) {
		o.scratchDir = path
	}
}

// Initialize loads the DISM engine into the process. It must complete
// successfully before any other call, and must be paired with Shutdown.
// Initializing an already initialized engine is accepted and does nothing.
func Initialize(ctx context.Context, opts ...InitOption) (err error) {
	defer decorate.OnError(&err, "could not initialize the DISM engine")

	options := initOptions{
		logLevel: flags.LogErrorsWarningsInfo,
	}
	for _, o := range opts {
		o(&options)
	}

	return selectBackend(ctx).Initialize(options.logLevel, options.logFile, options.scratchDir)
}

// Shutdown unloads the DISM engine from the process. All sessions must be
// closed first. Mounted images stay mounted across shutdowns.
func Shutdown(ctx context.Context) (err error) {
	defer decorate.OnError(&err, "could not shut down the DISM engine")

	return selectBackend(ctx).Shutdown()
}
