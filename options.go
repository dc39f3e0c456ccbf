package godism

// This file contains the options accepted by the image and servicing
// operations. Every operation documents which of these it honours; the rest
// have no effect on it.

import (
	"github.com/ubuntu/godism/internal/flags"
)

type options struct {
	// Image selection
	imageIndex uint32
	imageName  string

	// Mount behaviour
	readOnly       bool
	optimize       bool
	checkIntegrity bool

	// Commit behaviour
	discard           bool
	generateIntegrity bool
	appendCommit      bool

	// Package association
	packageName string
	packagePath string

	// Servicing behaviour
	sourcePaths    []string
	limitAccess    bool
	enableAll      bool
	removePayload  bool
	ignoreCheck    bool
	preventPending bool
	forceUnsigned  bool
	allDrivers     bool
	scan           bool

	progress ProgressHandler
}

// Option customizes an image or servicing operation.
type Option func(*options)

// WithIndex selects an image inside a multi-image file by its 1-based index.
func WithIndex(index uint32) Option {
	return func(o *options) {
		o.imageIndex = index
	}
}

// WithName selects an image inside a multi-image file by its name.
func WithName(name string) Option {
	return func(o *options) {
		o.imageName = name
	}
}

// ReadOnly mounts the image without write access. A read-only mount cannot be
// committed.
func ReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithOptimize speeds up the initial mount at the expense of the first file
// accesses.
func WithOptimize() Option {
	return func(o *options) {
		o.optimize = true
	}
}

// WithCheckIntegrity makes the engine verify the image file against
// corruption before using it.
func WithCheckIntegrity() Option {
	return func(o *options) {
		o.checkIntegrity = true
	}
}

// Discard throws away all changes made to the mounted image instead of
// committing them.
func Discard() Option {
	return func(o *options) {
		o.discard = true
	}
}

// WithGenerateIntegrity embeds integrity data when committing.
func WithGenerateIntegrity() Option {
	return func(o *options) {
		o.generateIntegrity = true
	}
}

// WithAppend commits the changes as a new image inside the file rather than
// overwriting the mounted one.
func WithAppend() Option {
	return func(o *options) {
		o.appendCommit = true
	}
}

// WithPackageName scopes a feature operation to the package with this
// identity.
func WithPackageName(name string) Option {
	return func(o *options) {
		o.packageName = name
	}
}

// WithPackagePath scopes a feature operation to the package in this .cab
// file.
func WithPackagePath(path string) Option {
	return func(o *options) {
		o.packagePath = path
	}
}

// WithSources adds locations to fetch payload files from.
func WithSources(paths ...string) Option {
	return func(o *options) {
		o.sourcePaths = append(o.sourcePaths, paths...)
	}
}

// LimitAccess forbids contacting Windows Update for payload files.
func LimitAccess() Option {
	return func(o *options) {
		o.limitAccess = true
	}
}

// EnableAll also enables all parent features of the requested one.
func EnableAll() Option {
	return func(o *options) {
		o.enableAll = true
	}
}

// RemovePayload removes the feature's files from the image besides disabling
// it. Re-enabling will need a source.
func RemovePayload() Option {
	return func(o *options) {
		o.removePayload = true
	}
}

// IgnoreCheck skips the applicability check of a package.
func IgnoreCheck() Option {
	return func(o *options) {
		o.ignoreCheck = true
	}
}

// PreventPending refuses to install a package that would need a pending
// operation to complete.
func PreventPending() Option {
	return func(o *options) {
		o.preventPending = true
	}
}

// ForceUnsigned accepts a driver without a valid signature. Only honoured on
// x86 and amd64 images.
func ForceUnsigned() Option {
	return func(o *options) {
		o.forceUnsigned = true
	}
}

// AllDrivers lists the inbox drivers in addition to the out-of-box ones.
func AllDrivers() Option {
	return func(o *options) {
		o.allDrivers = true
	}
}

// WithScan performs a full corruption scan instead of only reading the result
// of the previous one.
func WithScan() Option {
	return func(o *options) {
		o.scan = true
	}
}

// WithProgress subscribes a handler to the operation's progress reports.
func WithProgress(handler ProgressHandler) Option {
	return func(o *options) {
		o.progress = handler
	}
}

// packageIdentifier expresses the package association options in the shape
// the backends take.
func (o options) packageIdentifier() (identifier string, kind flags.PackageIdentifier) {
	if o.packagePath != "" {
		return o.packagePath, flags.PackagePath
	}
	if o.packageName != "" {
		return o.packageName, flags.PackageName
	}
	return "", flags.PackageNone
}
