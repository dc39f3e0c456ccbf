// Package flags contains the bitmasks and selector enums consumed by the
// DISM entry points.
package flags

// MountFlags is an alias for the Flags argument of Windows' DismMountImage.
// https://learn.microsoft.com/en-us/windows/win32/dism/dism-api-constants
type MountFlags uint32

// Allowing underscores in names to keep them as close to Windows as possible.
const (
	// All nolints are regarding the use of UPPPER_CASE.

	flag_MOUNT_READWRITE       MountFlags = 0x0 //nolint:revive
	flag_MOUNT_READONLY        MountFlags = 0x1 //nolint:revive
	flag_MOUNT_OPTIMIZE        MountFlags = 0x2 //nolint:revive
	flag_MOUNT_CHECK_INTEGRITY MountFlags = 0x4 //nolint:revive
)

// CommitFlags is an alias for the Flags argument of Windows' DismUnmountImage
// and DismCommitImage.
type CommitFlags uint32

const (
	flag_COMMIT_IMAGE              CommitFlags = 0x0     //nolint:revive
	flag_DISCARD_IMAGE             CommitFlags = 0x1     //nolint:revive
	flag_COMMIT_GENERATE_INTEGRITY CommitFlags = 0x10000 //nolint:revive
	flag_COMMIT_APPEND             CommitFlags = 0x20000 //nolint:revive
)

// LogLevel is an alias for Windows' DismLogLevel.
type LogLevel uint32

const (
	LogErrors             LogLevel = 0
	LogErrorsWarnings     LogLevel = 1
	LogErrorsWarningsInfo LogLevel = 2
)

// ImageIdentifier is an alias for Windows' DismImageIdentifier: whether an
// image inside a file is selected by index or by name.
type ImageIdentifier uint32

const (
	ImageIndex ImageIdentifier = 0
	ImageName  ImageIdentifier = 1
)

// PackageIdentifier is an alias for Windows' DismPackageIdentifier: whether a
// package is referred to by its name or by a path to its .cab file.
type PackageIdentifier uint32

const (
	PackageNone PackageIdentifier = 0
	PackageName PackageIdentifier = 1
	PackagePath PackageIdentifier = 2
)
