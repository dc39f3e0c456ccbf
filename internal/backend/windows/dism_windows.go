package windows

// This file contains the dismapi.dll imports and call wrappers.
//
// Every wrapper follows the same discipline: convert arguments to their
// native shape, make the call, translate the HRESULT, and release any
// native buffer with DismDelete before returning, on success and failure
// alike.

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/backend"
	"github.com/ubuntu/godism/internal/dismerror"
	"github.com/ubuntu/godism/internal/flags"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/native"
	"github.com/ubuntu/godism/internal/progress"
	"github.com/ubuntu/godism/internal/state"
	"golang.org/x/sys/windows"
)

var (
	// DISM api.
	dismAPIDll                 = syscall.NewLazyDLL("dismapi.dll")
	apiDismInitialize          = dismAPIDll.NewProc("DismInitialize")
	apiDismShutdown            = dismAPIDll.NewProc("DismShutdown")
	apiDismOpenSession         = dismAPIDll.NewProc("DismOpenSession")
	apiDismCloseSession        = dismAPIDll.NewProc("DismCloseSession")
	apiDismMountImage          = dismAPIDll.NewProc("DismMountImage")
	apiDismUnmountImage        = dismAPIDll.NewProc("DismUnmountImage")
	apiDismRemountImage        = dismAPIDll.NewProc("DismRemountImage")
	apiDismCommitImage         = dismAPIDll.NewProc("DismCommitImage")
	apiDismGetMountedImageInfo = dismAPIDll.NewProc("DismGetMountedImageInfo")
	apiDismGetImageInfo        = dismAPIDll.NewProc("DismGetImageInfo")
	apiDismCleanupMountpoints  = dismAPIDll.NewProc("DismCleanupMountpoints")
	apiDismAddDriver           = dismAPIDll.NewProc("DismAddDriver")
	apiDismRemoveDriver        = dismAPIDll.NewProc("DismRemoveDriver")
	apiDismGetDrivers          = dismAPIDll.NewProc("DismGetDrivers")
	apiDismGetDriverInfo       = dismAPIDll.NewProc("DismGetDriverInfo")
	apiDismEnableFeature       = dismAPIDll.NewProc("DismEnableFeature")
	apiDismDisableFeature      = dismAPIDll.NewProc("DismDisableFeature")
	apiDismGetFeatures         = dismAPIDll.NewProc("DismGetFeatures")
	apiDismGetFeatureInfo      = dismAPIDll.NewProc("DismGetFeatureInfo")
	apiDismGetFeatureParent    = dismAPIDll.NewProc("DismGetFeatureParent")
	apiDismAddPackage          = dismAPIDll.NewProc("DismAddPackage")
	apiDismRemovePackage       = dismAPIDll.NewProc("DismRemovePackage")
	apiDismGetPackages         = dismAPIDll.NewProc("DismGetPackages")
	apiDismGetPackageInfo      = dismAPIDll.NewProc("DismGetPackageInfo")
	apiDismCheckImageHealth    = dismAPIDll.NewProc("DismCheckImageHealth")
	apiDismRestoreImageHealth  = dismAPIDll.NewProc("DismRestoreImageHealth")
	apiDismGetLastErrorMessage = dismAPIDll.NewProc("DismGetLastErrorMessage")
	apiDismDelete              = dismAPIDll.NewProc("DismDelete")
)

// Initialize is a wrapper around the DismInitialize
// function in the dismapi.dll Win32 library.
func (Backend) Initialize(logLevel flags.LogLevel, logFilePath, scratchDir string) (err error) {
	defer decorate.OnError(&err, "DismInitialize")

	if err := loadDismAPI(); err != nil {
		return err
	}

	logUTF16, err := utf16PtrOrNil(logFilePath)
	if err != nil {
		return errors.New("could not convert log file path to UTF16")
	}

	scratchUTF16, err := utf16PtrOrNil(scratchDir)
	if err != nil {
		return errors.New("could not convert scratch directory to UTF16")
	}

	hr, _, _ := apiDismInitialize.Call(
		uintptr(logLevel),
		uintptr(unsafe.Pointer(logUTF16)),
		uintptr(unsafe.Pointer(scratchUTF16)),
	)

	return checkResult("DismInitialize", hr, nil)
}

// Shutdown is a wrapper around the DismShutdown
// function in the dismapi.dll Win32 library.
func (Backend) Shutdown() (err error) {
	defer decorate.OnError(&err, "DismShutdown")

	hr, _, _ := apiDismShutdown.Call()
	return checkResult("DismShutdown", hr, nil)
}

// OpenSession is a wrapper around the DismOpenSession
// function in the dismapi.dll Win32 library.
func (Backend) OpenSession(imagePath, windowsDir, systemDrive string) (session backend.Session, err error) {
	defer decorate.OnError(&err, "DismOpenSession")

	imageUTF16, err := syscall.UTF16PtrFromString(imagePath)
	if err != nil {
		return 0, errors.New("could not convert image path to UTF16")
	}

	windowsDirUTF16, err := utf16PtrOrNil(windowsDir)
	if err != nil {
		return 0, errors.New("could not convert windows directory to UTF16")
	}

	systemDriveUTF16, err := utf16PtrOrNil(systemDrive)
	if err != nil {
		return 0, errors.New("could not convert system drive to UTF16")
	}

	hr, _, _ := apiDismOpenSession.Call(
		uintptr(unsafe.Pointer(imageUTF16)),
		uintptr(unsafe.Pointer(windowsDirUTF16)),
		uintptr(unsafe.Pointer(systemDriveUTF16)),
		uintptr(unsafe.Pointer(&session)),
	)

	if err := checkResult("DismOpenSession", hr, nil); err != nil {
		return 0, err
	}
	return session, nil
}

// CloseSession is a wrapper around the DismCloseSession
// function in the dismapi.dll Win32 library.
func (Backend) CloseSession(session backend.Session) (err error) {
	defer decorate.OnError(&err, "DismCloseSession")

	hr, _, _ := apiDismCloseSession.Call(uintptr(session))
	return checkResult("DismCloseSession", hr, nil)
}

// MountImage is a wrapper around the DismMountImage
// function in the dismapi.dll Win32 library.
func (Backend) MountImage(imageFilePath, mountPath string, imageIndex uint32, imageName string, identifier flags.ImageIdentifier, mount flags.MountFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismMountImage")

	imageUTF16, err := syscall.UTF16PtrFromString(imageFilePath)
	if err != nil {
		return errors.New("could not convert image file path to UTF16")
	}

	mountUTF16, err := syscall.UTF16PtrFromString(mountPath)
	if err != nil {
		return errors.New("could not convert mount path to UTF16")
	}

	nameUTF16, err := utf16PtrOrNil(imageName)
	if err != nil {
		return errors.New("could not convert image name to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismMountImage.Call(
		uintptr(unsafe.Pointer(imageUTF16)),
		uintptr(unsafe.Pointer(mountUTF16)),
		uintptr(imageIndex),
		uintptr(unsafe.Pointer(nameUTF16)),
		uintptr(identifier),
		uintptr(mount),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismMountImage", hr, bridge)
}

// UnmountImage is a wrapper around the DismUnmountImage
// function in the dismapi.dll Win32 library.
func (Backend) UnmountImage(mountPath string, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismUnmountImage")

	mountUTF16, err := syscall.UTF16PtrFromString(mountPath)
	if err != nil {
		return errors.New("could not convert mount path to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismUnmountImage.Call(
		uintptr(unsafe.Pointer(mountUTF16)),
		uintptr(commit),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismUnmountImage", hr, bridge)
}

// RemountImage is a wrapper around the DismRemountImage
// function in the dismapi.dll Win32 library.
func (Backend) RemountImage(mountPath string) (err error) {
	defer decorate.OnError(&err, "DismRemountImage")

	mountUTF16, err := syscall.UTF16PtrFromString(mountPath)
	if err != nil {
		return errors.New("could not convert mount path to UTF16")
	}

	hr, _, _ := apiDismRemountImage.Call(uintptr(unsafe.Pointer(mountUTF16)))
	return checkResult("DismRemountImage", hr, nil)
}

// CommitImage is a wrapper around the DismCommitImage
// function in the dismapi.dll Win32 library.
func (Backend) CommitImage(session backend.Session, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismCommitImage")

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismCommitImage.Call(
		uintptr(session),
		uintptr(commit),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismCommitImage", hr, bridge)
}

// MountedImages is a wrapper around the DismGetMountedImageInfo
// function in the dismapi.dll Win32 library.
func (Backend) MountedImages() (images []info.MountedImage, err error) {
	defer decorate.OnError(&err, "DismGetMountedImageInfo")

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetMountedImageInfo.Call(
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetMountedImageInfo", hr, nil); err != nil {
		return nil, err
	}
	return native.MountedImages(buf, count), nil
}

// ImageInfo is a wrapper around the DismGetImageInfo
// function in the dismapi.dll Win32 library.
func (Backend) ImageInfo(imageFilePath string) (images []info.Image, err error) {
	defer decorate.OnError(&err, "DismGetImageInfo")

	imageUTF16, err := syscall.UTF16PtrFromString(imageFilePath)
	if err != nil {
		return nil, errors.New("could not convert image file path to UTF16")
	}

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetImageInfo.Call(
		uintptr(unsafe.Pointer(imageUTF16)),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetImageInfo", hr, nil); err != nil {
		return nil, err
	}
	return native.Images(buf, count), nil
}

// CleanupMountpoints is a wrapper around the DismCleanupMountpoints
// function in the dismapi.dll Win32 library.
func (Backend) CleanupMountpoints() (err error) {
	defer decorate.OnError(&err, "DismCleanupMountpoints")

	hr, _, _ := apiDismCleanupMountpoints.Call()
	return checkResult("DismCleanupMountpoints", hr, nil)
}

// AddDriver is a wrapper around the DismAddDriver
// function in the dismapi.dll Win32 library.
func (Backend) AddDriver(session backend.Session, driverPath string, forceUnsigned bool) (err error) {
	defer decorate.OnError(&err, "DismAddDriver")

	driverUTF16, err := syscall.UTF16PtrFromString(driverPath)
	if err != nil {
		return errors.New("could not convert driver path to UTF16")
	}

	hr, _, _ := apiDismAddDriver.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(driverUTF16)),
		boolArg(forceUnsigned),
	)

	return checkResult("DismAddDriver", hr, nil)
}

// RemoveDriver is a wrapper around the DismRemoveDriver
// function in the dismapi.dll Win32 library.
func (Backend) RemoveDriver(session backend.Session, driverPath string) (err error) {
	defer decorate.OnError(&err, "DismRemoveDriver")

	driverUTF16, err := syscall.UTF16PtrFromString(driverPath)
	if err != nil {
		return errors.New("could not convert driver path to UTF16")
	}

	hr, _, _ := apiDismRemoveDriver.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(driverUTF16)),
	)

	return checkResult("DismRemoveDriver", hr, nil)
}

// Drivers is a wrapper around the DismGetDrivers
// function in the dismapi.dll Win32 library.
func (Backend) Drivers(session backend.Session, allDrivers bool) (drivers []info.DriverPackage, err error) {
	defer decorate.OnError(&err, "DismGetDrivers")

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetDrivers.Call(
		uintptr(session),
		boolArg(allDrivers),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetDrivers", hr, nil); err != nil {
		return nil, err
	}
	return native.DriverPackages(buf, count), nil
}

// DriverInfo is a wrapper around the DismGetDriverInfo
// function in the dismapi.dll Win32 library.
func (Backend) DriverInfo(session backend.Session, driverPath string) (drivers []info.Driver, err error) {
	defer decorate.OnError(&err, "DismGetDriverInfo")

	driverUTF16, err := syscall.UTF16PtrFromString(driverPath)
	if err != nil {
		return nil, errors.New("could not convert driver path to UTF16")
	}

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetDriverInfo.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(driverUTF16)),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
		0, // DriverPackage: optional, not requested
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetDriverInfo", hr, nil); err != nil {
		return nil, err
	}
	return native.Drivers(buf, count), nil
}

// EnableFeature is a wrapper around the DismEnableFeature
// function in the dismapi.dll Win32 library.
func (Backend) EnableFeature(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier, limitAccess bool, sourcePaths []string, enableAll bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismEnableFeature")

	featureUTF16, err := syscall.UTF16PtrFromString(featureName)
	if err != nil {
		return errors.New("could not convert feature name to UTF16")
	}

	identifierUTF16, err := utf16PtrOrNil(identifier)
	if err != nil {
		return errors.New("could not convert package identifier to UTF16")
	}

	sources, err := utf16PtrArray(sourcePaths)
	if err != nil {
		return errors.New("could not convert source paths to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismEnableFeature.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(featureUTF16)),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		boolArg(limitAccess),
		uintptr(unsafe.Pointer(sources)),
		uintptr(uint32(len(sourcePaths))),
		boolArg(enableAll),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismEnableFeature", hr, bridge)
}

// DisableFeature is a wrapper around the DismDisableFeature
// function in the dismapi.dll Win32 library.
func (Backend) DisableFeature(session backend.Session, featureName, packageName string, removePayload bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismDisableFeature")

	featureUTF16, err := syscall.UTF16PtrFromString(featureName)
	if err != nil {
		return errors.New("could not convert feature name to UTF16")
	}

	packageUTF16, err := utf16PtrOrNil(packageName)
	if err != nil {
		return errors.New("could not convert package name to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismDisableFeature.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(featureUTF16)),
		uintptr(unsafe.Pointer(packageUTF16)),
		boolArg(removePayload),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismDisableFeature", hr, bridge)
}

// Features is a wrapper around the DismGetFeatures
// function in the dismapi.dll Win32 library.
func (Backend) Features(session backend.Session, identifier string, packageID flags.PackageIdentifier) (features []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatures")

	identifierUTF16, err := utf16PtrOrNil(identifier)
	if err != nil {
		return nil, errors.New("could not convert package identifier to UTF16")
	}

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetFeatures.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetFeatures", hr, nil); err != nil {
		return nil, err
	}
	return native.Features(buf, count), nil
}

// FeatureInfo is a wrapper around the DismGetFeatureInfo
// function in the dismapi.dll Win32 library.
func (Backend) FeatureInfo(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (feature info.FeatureInfo, err error) {
	defer decorate.OnError(&err, "DismGetFeatureInfo")

	featureUTF16, err := syscall.UTF16PtrFromString(featureName)
	if err != nil {
		return feature, errors.New("could not convert feature name to UTF16")
	}

	identifierUTF16, err := utf16PtrOrNil(identifier)
	if err != nil {
		return feature, errors.New("could not convert package identifier to UTF16")
	}

	var buf unsafe.Pointer

	hr, _, _ := apiDismGetFeatureInfo.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(featureUTF16)),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		uintptr(unsafe.Pointer(&buf)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetFeatureInfo", hr, nil); err != nil {
		return feature, err
	}
	return native.FeatureInfo(buf), nil
}

// FeatureParents is a wrapper around the DismGetFeatureParent
// function in the dismapi.dll Win32 library.
func (Backend) FeatureParents(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (parents []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatureParent")

	featureUTF16, err := syscall.UTF16PtrFromString(featureName)
	if err != nil {
		return nil, errors.New("could not convert feature name to UTF16")
	}

	identifierUTF16, err := utf16PtrOrNil(identifier)
	if err != nil {
		return nil, errors.New("could not convert package identifier to UTF16")
	}

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetFeatureParent.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(featureUTF16)),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetFeatureParent", hr, nil); err != nil {
		return nil, err
	}
	return native.Features(buf, count), nil
}

// AddPackage is a wrapper around the DismAddPackage
// function in the dismapi.dll Win32 library.
func (Backend) AddPackage(session backend.Session, packagePath string, ignoreCheck, preventPending bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismAddPackage")

	packageUTF16, err := syscall.UTF16PtrFromString(packagePath)
	if err != nil {
		return errors.New("could not convert package path to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismAddPackage.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(packageUTF16)),
		boolArg(ignoreCheck),
		boolArg(preventPending),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismAddPackage", hr, bridge)
}

// RemovePackage is a wrapper around the DismRemovePackage
// function in the dismapi.dll Win32 library.
func (Backend) RemovePackage(session backend.Session, identifier string, packageID flags.PackageIdentifier, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRemovePackage")

	identifierUTF16, err := syscall.UTF16PtrFromString(identifier)
	if err != nil {
		return errors.New("could not convert package identifier to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismRemovePackage.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismRemovePackage", hr, bridge)
}

// Packages is a wrapper around the DismGetPackages
// function in the dismapi.dll Win32 library.
func (Backend) Packages(session backend.Session) (packages []info.Package, err error) {
	defer decorate.OnError(&err, "DismGetPackages")

	var buf unsafe.Pointer
	var count uint32

	hr, _, _ := apiDismGetPackages.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&count)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetPackages", hr, nil); err != nil {
		return nil, err
	}
	return native.Packages(buf, count), nil
}

// PackageInfo is a wrapper around the DismGetPackageInfo
// function in the dismapi.dll Win32 library.
func (Backend) PackageInfo(session backend.Session, identifier string, packageID flags.PackageIdentifier) (pkg info.PackageInfo, err error) {
	defer decorate.OnError(&err, "DismGetPackageInfo")

	identifierUTF16, err := syscall.UTF16PtrFromString(identifier)
	if err != nil {
		return pkg, errors.New("could not convert package identifier to UTF16")
	}

	var buf unsafe.Pointer

	hr, _, _ := apiDismGetPackageInfo.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(identifierUTF16)),
		uintptr(packageID),
		uintptr(unsafe.Pointer(&buf)),
	)
	defer func() { dismDelete(buf) }()

	if err := checkResult("DismGetPackageInfo", hr, nil); err != nil {
		return pkg, err
	}
	return native.PackageInfo(buf), nil
}

// CheckImageHealth is a wrapper around the DismCheckImageHealth
// function in the dismapi.dll Win32 library.
func (Backend) CheckImageHealth(session backend.Session, scanImage bool, bridge *progress.Bridge) (health state.Health, err error) {
	defer decorate.OnError(&err, "DismCheckImageHealth")

	cancelEvent, callback, userData := progressArgs(bridge)

	var nativeHealth int32

	hr, _, _ := apiDismCheckImageHealth.Call(
		uintptr(session),
		boolArg(scanImage),
		cancelEvent,
		callback,
		userData,
		uintptr(unsafe.Pointer(&nativeHealth)),
	)

	if err := checkResult("DismCheckImageHealth", hr, bridge); err != nil {
		return state.Error, err
	}
	return state.Health(nativeHealth), nil
}

// RestoreImageHealth is a wrapper around the DismRestoreImageHealth
// function in the dismapi.dll Win32 library.
func (Backend) RestoreImageHealth(session backend.Session, sourcePaths []string, limitAccess bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRestoreImageHealth")

	sources, err := utf16PtrArray(sourcePaths)
	if err != nil {
		return errors.New("could not convert source paths to UTF16")
	}

	cancelEvent, callback, userData := progressArgs(bridge)

	hr, _, _ := apiDismRestoreImageHealth.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(sources)),
		uintptr(uint32(len(sourcePaths))),
		boolArg(limitAccess),
		cancelEvent,
		callback,
		userData,
	)

	return checkResult("DismRestoreImageHealth", hr, bridge)
}

// checkResult translates the HRESULT of a finished DISM call. On failure it
// fetches DISM's thread-local diagnostic text right away, before any other
// native call can overwrite it.
func checkResult(proc string, hr uintptr, bridge *progress.Bridge) error {
	err := dismerror.Translate(uint32(hr), bridge.Cancelled(), lastErrorMessage)
	if err != nil {
		logrus.WithError(err).WithField("hr", fmt.Sprintf("0x%08X", uint32(hr))).Trace(proc)
	}
	return err
}

// lastErrorMessage fetches the diagnostic text DISM recorded for the most
// recent call on this thread. It is only valid until the next native call.
func lastErrorMessage() string {
	var buf *native.DismString

	hr, _, _ := apiDismGetLastErrorMessage.Call(uintptr(unsafe.Pointer(&buf)))
	if hr != 0 || buf == nil {
		return ""
	}
	defer dismDelete(unsafe.Pointer(buf))

	return native.String(buf.Value)
}

// dismDelete releases a native buffer through DISM's dedicated release entry
// point. Releasing a nil pointer is a no-op and makes no native call.
func dismDelete(buf unsafe.Pointer) {
	if buf == nil {
		return
	}
	if hr, _, _ := apiDismDelete.Call(uintptr(buf)); hr != 0 {
		logrus.WithField("hr", fmt.Sprintf("0x%08X", uint32(hr))).Warn("DismDelete")
	}
}

// progressArgs expands a bridge into the (CancelEvent, Progress, UserData)
// argument triple of the long-running DISM entry points. A nil bridge turns
// into three null arguments.
func progressArgs(bridge *progress.Bridge) (cancelEvent, callback, userData uintptr) {
	if bridge == nil {
		return 0, 0, 0
	}
	return uintptr(bridge.Handle()), progress.Callback(), bridge.Token()
}

// utf16PtrOrNil converts an optional string argument, mapping the empty
// string to the null pointer DISM expects for omitted arguments.
func utf16PtrOrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return syscall.UTF16PtrFromString(s)
}

// utf16PtrArray converts a slice of strings to the *PCWSTR array shape of
// DISM's source path arguments. An empty slice converts to nil.
func utf16PtrArray(strs []string) (**uint16, error) {
	if len(strs) == 0 {
		return nil, nil
	}

	ptrs := make([]*uint16, 0, len(strs))
	for _, s := range strs {
		p, err := syscall.UTF16PtrFromString(s)
		if err != nil {
			return nil, err
		}
		ptrs = append(ptrs, p)
	}
	return &ptrs[0], nil
}

// boolArg converts a Go bool to Windows' BOOL calling convention.
func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// loadDismAPI resolves dismapi.dll. The system copy is preferred; when it is
// not on the search path the Windows Kits deployment tools installation is
// located through the registry and the DLL is loaded from there.
func loadDismAPI() error {
	if err := dismAPIDll.Load(); err == nil {
		return nil
	}

	root, err := kitsRootPath()
	if err != nil {
		return fmt.Errorf("dismapi.dll is not on the search path and no Windows Kits installation was found: %v", err)
	}

	path := filepath.Join(root, "Assessment and Deployment Kit", "Deployment Tools", kitsArch(), "DISM", "dismapi.dll")
	if _, err := windows.LoadDLL(path); err != nil {
		return fmt.Errorf("could not load %s: %v", path, err)
	}

	// The module is in the process now, so lazy resolution finds it by name.
	return dismAPIDll.Load()
}

// kitsArch is the architecture directory name used by the Windows Kits tree.
func kitsArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "amd64"
	case "arm64":
		return "arm64"
	case "386":
		return "x86"
	}
	return runtime.GOARCH
}
