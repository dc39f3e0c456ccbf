// Package backend defines all the actions that a back-end to godism must
// be able to perform in order to run, or otherwise mock, the DISM API.
package backend

import (
	"github.com/ubuntu/godism/internal/flags"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/progress"
	"github.com/ubuntu/godism/internal/state"
)

// OnlineImagePath is the pseudo-path that stands for the running Windows
// installation when opening a session.
const OnlineImagePath = "DISM_{53BFAE52-B167-4E2F-A258-0A37B57FF845}"

// Session is the opaque token DISM hands out when a session is opened. It is
// owned by the caller from open to close; a closed token must not be reused.
type Session uintptr

// Backend defines what a back-end to godism must be able to do or mock.
//
// Long-running operations take an optional *progress.Bridge; nil means the
// caller did not ask for progress and cannot cancel. The backend never
// retains the bridge past the call.
type Backend interface {
	// Process lifecycle
	Initialize(logLevel flags.LogLevel, logFilePath, scratchDir string) error
	Shutdown() error

	// Sessions
	OpenSession(imagePath, windowsDir, systemDrive string) (Session, error)
	CloseSession(session Session) error

	// Image lifecycle
	MountImage(imageFilePath, mountPath string, imageIndex uint32, imageName string, identifier flags.ImageIdentifier, mount flags.MountFlags, bridge *progress.Bridge) error
	UnmountImage(mountPath string, commit flags.CommitFlags, bridge *progress.Bridge) error
	RemountImage(mountPath string) error
	CommitImage(session Session, commit flags.CommitFlags, bridge *progress.Bridge) error
	MountedImages() ([]info.MountedImage, error)
	ImageInfo(imageFilePath string) ([]info.Image, error)
	CleanupMountpoints() error

	// Driver servicing
	AddDriver(session Session, driverPath string, forceUnsigned bool) error
	RemoveDriver(session Session, driverPath string) error
	Drivers(session Session, allDrivers bool) ([]info.DriverPackage, error)
	DriverInfo(session Session, driverPath string) ([]info.Driver, error)

	// Feature servicing
	EnableFeature(session Session, featureName, identifier string, packageID flags.PackageIdentifier, limitAccess bool, sourcePaths []string, enableAll bool, bridge *progress.Bridge) error
	DisableFeature(session Session, featureName, packageName string, removePayload bool, bridge *progress.Bridge) error
	Features(session Session, identifier string, packageID flags.PackageIdentifier) ([]info.Feature, error)
	FeatureInfo(session Session, featureName, identifier string, packageID flags.PackageIdentifier) (info.FeatureInfo, error)
	FeatureParents(session Session, featureName, identifier string, packageID flags.PackageIdentifier) ([]info.Feature, error)

	// Package servicing
	AddPackage(session Session, packagePath string, ignoreCheck, preventPending bool, bridge *progress.Bridge) error
	RemovePackage(session Session, identifier string, packageID flags.PackageIdentifier, bridge *progress.Bridge) error
	Packages(session Session) ([]info.Package, error)
	PackageInfo(session Session, identifier string, packageID flags.PackageIdentifier) (info.PackageInfo, error)

	// Health
	CheckImageHealth(session Session, scanImage bool, bridge *progress.Bridge) (state.Health, error)
	RestoreImageHealth(session Session, sourcePaths []string, limitAccess bool, bridge *progress.Bridge) error
}
