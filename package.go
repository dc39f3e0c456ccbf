package godism

// This file contains the .cab and .msu package operations.

import (
	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/flags"
)

// AddPackage installs the package at packagePath, a .cab or .msu file, into
// the session's image.
//
// A non-nil error with errors.Is(err, ErrRebootRequired) true means the
// package is installed pending a reboot.
//
// Honoured options: IgnoreCheck, PreventPending, WithProgress.
func (s *Session) AddPackage(packagePath string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not add package %q to %s", packagePath, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.AddPackage(s.handle, packagePath, options.ignoreCheck, options.preventPending, bridge)
}

// RemovePackage removes the package with the given identity from the
// session's image.
//
// Honoured options: WithProgress.
func (s *Session) RemovePackage(packageName string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not remove package %q from %s", packageName, s)

	return s.removePackage(packageName, flags.PackageName, opts)
}

// RemovePackageFile removes the package whose .cab file is at packagePath
// from the session's image.
//
// Honoured options: WithProgress.
func (s *Session) RemovePackageFile(packagePath string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not remove the package at %q from %s", packagePath, s)

	return s.removePackage(packagePath, flags.PackagePath, opts)
}

func (s *Session) removePackage(identifier string, kind flags.PackageIdentifier, opts []Option) error {
	var options options
	for _, o := range opts {
		o(&options)
	}

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.RemovePackage(s.handle, identifier, kind, bridge)
}

// Packages lists the packages of the session's image and their states.
func (s *Session) Packages() (packages []Package, err error) {
	defer decorate.OnError(&err, "could not list the packages of %s", s)

	return s.backend.Packages(s.handle)
}

// PackageInfo describes the package with the given identity.
func (s *Session) PackageInfo(packageName string) (pkg PackageInfo, err error) {
	defer decorate.OnError(&err, "could not describe package %q in %s", packageName, s)

	return s.backend.PackageInfo(s.handle, packageName, flags.PackageName)
}

// PackageFileInfo describes the package whose .cab file is at packagePath.
func (s *Session) PackageFileInfo(packagePath string) (pkg PackageInfo, err error) {
	defer decorate.OnError(&err, "could not describe the package at %q in %s", packagePath, s)

	return s.backend.PackageInfo(s.handle, packagePath, flags.PackagePath)
}
