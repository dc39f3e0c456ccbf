package windows

// This file contains mocks for the dismapi.dll definitions and imports.

import (
	"errors"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/backend"
	"github.com/ubuntu/godism/internal/flags"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/progress"
	"github.com/ubuntu/godism/internal/state"
)

// Initialize is a wrapper around the DismInitialize
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) Initialize(logLevel flags.LogLevel, logFilePath, scratchDir string) (err error) {
	defer decorate.OnError(&err, "DismInitialize")
	return errors.New("not implemented")
}

// Shutdown is a wrapper around the DismShutdown
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) Shutdown() (err error) {
	defer decorate.OnError(&err, "DismShutdown")
	return errors.New("not implemented")
}

// OpenSession is a wrapper around the DismOpenSession
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) OpenSession(imagePath, windowsDir, systemDrive string) (session backend.Session, err error) {
	defer decorate.OnError(&err, "DismOpenSession")
	return 0, errors.New("not implemented")
}

// CloseSession is a wrapper around the DismCloseSession
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) CloseSession(session backend.Session) (err error) {
	defer decorate.OnError(&err, "DismCloseSession")
	return errors.New("not implemented")
}

// MountImage is a wrapper around the DismMountImage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) MountImage(imageFilePath, mountPath string, imageIndex uint32, imageName string, identifier flags.ImageIdentifier, mount flags.MountFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismMountImage")
	return errors.New("not implemented")
}

// UnmountImage is a wrapper around the DismUnmountImage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) UnmountImage(mountPath string, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismUnmountImage")
	return errors.New("not implemented")
}

// RemountImage is a wrapper around the DismRemountImage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) RemountImage(mountPath string) (err error) {
	defer decorate.OnError(&err, "DismRemountImage")
	return errors.New("not implemented")
}

// CommitImage is a wrapper around the DismCommitImage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) CommitImage(session backend.Session, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismCommitImage")
	return errors.New("not implemented")
}

// MountedImages is a wrapper around the DismGetMountedImageInfo
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) MountedImages() (images []info.MountedImage, err error) {
	defer decorate.OnError(&err, "DismGetMountedImageInfo")
	return nil, errors.New("not implemented")
}

// ImageInfo is a wrapper around the DismGetImageInfo
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) ImageInfo(imageFilePath string) (images []info.Image, err error) {
	defer decorate.OnError(&err, "DismGetImageInfo")
	return nil, errors.New("not implemented")
}

// CleanupMountpoints is a wrapper around the DismCleanupMountpoints
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) CleanupMountpoints() (err error) {
	defer decorate.OnError(&err, "DismCleanupMountpoints")
	return errors.New("not implemented")
}

// AddDriver is a wrapper around the DismAddDriver
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) AddDriver(session backend.Session, driverPath string, forceUnsigned bool) (err error) {
	defer decorate.OnError(&err, "DismAddDriver")
	return errors.New("not implemented")
}

// RemoveDriver is a wrapper around the DismRemoveDriver
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) RemoveDriver(session backend.Session, driverPath string) (err error) {
	defer decorate.OnError(&err, "DismRemoveDriver")
	return errors.New("not implemented")
}

// Drivers is a wrapper around the DismGetDrivers
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) Drivers(session backend.Session, allDrivers bool) (drivers []info.DriverPackage, err error) {
	defer decorate.OnError(&err, "DismGetDrivers")
	return nil, errors.New("not implemented")
}

// DriverInfo is a wrapper around the DismGetDriverInfo
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) DriverInfo(session backend.Session, driverPath string) (drivers []info.Driver, err error) {
	defer decorate.OnError(&err, "DismGetDriverInfo")
	return nil, errors.New("not implemented")
}

// EnableFeature is a wrapper around the DismEnableFeature
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) EnableFeature(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier, limitAccess bool, sourcePaths []string, enableAll bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismEnableFeature")
	return errors.New("not implemented")
}

// DisableFeature is a wrapper around the DismDisableFeature
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) DisableFeature(session backend.Session, featureName, packageName string, removePayload bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismDisableFeature")
	return errors.New("not implemented")
}

// Features is a wrapper around the DismGetFeatures
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) Features(session backend.Session, identifier string, packageID flags.PackageIdentifier) (features []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatures")
	return nil, errors.New("not implemented")
}

// FeatureInfo is a wrapper around the DismGetFeatureInfo
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) FeatureInfo(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (feature info.FeatureInfo, err error) {
	defer decorate.OnError(&err, "DismGetFeatureInfo")
	return feature, errors.New("not implemented")
}

// FeatureParents is a wrapper around the DismGetFeatureParent
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) FeatureParents(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (parents []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatureParent")
	return nil, errors.New("not implemented")
}

// AddPackage is a wrapper around the DismAddPackage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) AddPackage(session backend.Session, packagePath string, ignoreCheck, preventPending bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismAddPackage")
	return errors.New("not implemented")
}

// RemovePackage is a wrapper around the DismRemovePackage
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) RemovePackage(session backend.Session, identifier string, packageID flags.PackageIdentifier, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRemovePackage")
	return errors.New("not implemented")
}

// Packages is a wrapper around the DismGetPackages
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) Packages(session backend.Session) (packages []info.Package, err error) {
	defer decorate.OnError(&err, "DismGetPackages")
	return nil, errors.New("not implemented")
}

// PackageInfo is a wrapper around the DismGetPackageInfo
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) PackageInfo(session backend.Session, identifier string, packageID flags.PackageIdentifier) (pkg info.PackageInfo, err error) {
	defer decorate.OnError(&err, "DismGetPackageInfo")
	return pkg, errors.New("not implemented")
}

// CheckImageHealth is a wrapper around the DismCheckImageHealth
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) CheckImageHealth(session backend.Session, scanImage bool, bridge *progress.Bridge) (health state.Health, err error) {
	defer decorate.OnError(&err, "DismCheckImageHealth")
	return state.Error, errors.New("not implemented")
}

// RestoreImageHealth is a wrapper around the DismRestoreImageHealth
// function in the dismapi.dll Win32 library.
// This implementation will always fail on Linux.
func (Backend) RestoreImageHealth(session backend.Session, sourcePaths []string, limitAccess bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRestoreImageHealth")
	return errors.New("not implemented")
}
