package godism

// This file contains the servicing sessions that target-scoped operations
// hang off.

import (
	"context"
	"fmt"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/backend"
)

// Session is a servicing session opened against the running Windows
// installation or against a mounted image. Sessions are cheap; open as many
// as needed and close each one with Close before shutting the engine down.
type Session struct {
	backend   backend.Backend
	handle    backend.Session
	imagePath string
}

type sessionOptions struct {
	windowsDir  string
	systemDrive string
}

// SessionOption customizes how an offline session is opened.
type SessionOption func(*sessionOptions)

// WithWindowsDir points the session at a Windows directory other than the
// image's default "Windows".
func WithWindowsDir(path string) SessionOption {
	return func(o *sessionOptions) {
		o.windowsDir = path
	}
}

// WithSystemDrive names the drive holding the boot files of the image.
func WithSystemDrive(drive string) SessionOption {
	return func(o *sessionOptions) {
		o.systemDrive = drive
	}
}

// OpenOnlineSession opens a session against the running Windows
// installation. Servicing it needs an elevated process.
func OpenOnlineSession(ctx context.Context) (s *Session, err error) {
	defer decorate.OnError(&err, "could not open a session on the online image")

	return openSession(ctx, backend.OnlineImagePath, sessionOptions{})
}

// OpenOfflineSession opens a session against the image mounted at mountPath.
func OpenOfflineSession(ctx context.Context, mountPath string, opts ...SessionOption) (s *Session, err error) {
	defer decorate.OnError(&err, "could not open a session on the image mounted at %q", mountPath)

	var options sessionOptions
	for _, o := range opts {
		o(&options)
	}

	return openSession(ctx, mountPath, options)
}

func openSession(ctx context.Context, imagePath string, options sessionOptions) (*Session, error) {
	b := selectBackend(ctx)

	handle, err := b.OpenSession(imagePath, options.windowsDir, options.systemDrive)
	if err != nil {
		return nil, err
	}

	return &Session{
		backend:   b,
		handle:    handle,
		imagePath: imagePath,
	}, nil
}

// Close releases the session. Any further operation on it fails.
func (s *Session) Close() (err error) {
	defer decorate.OnError(&err, "could not close %s", s)

	return s.backend.CloseSession(s.handle)
}

func (s *Session) String() string {
	if s.imagePath == backend.OnlineImagePath {
		return "session on the online image"
	}
	return fmt.Sprintf("session on %s", s.imagePath)
}
