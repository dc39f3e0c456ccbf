package mock

// This file contains mocks for the dismapi.dll definitions and imports.

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/backend"
	"github.com/ubuntu/godism/internal/dismerror"
	"github.com/ubuntu/godism/internal/flags"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/progress"
	"github.com/ubuntu/godism/internal/state"
)

// installTime is the timestamp the mock stamps on everything it installs.
var installTime = time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)

// Initialize mocks the DismInitialize call to the DISM API.
func (b *Backend) Initialize(logLevel flags.LogLevel, logFilePath, scratchDir string) (err error) {
	defer decorate.OnError(&err, "DismInitialize")

	if b.InitializeError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Initializing twice is accepted, like the real library accepts it.
	b.initialized = true
	return nil
}

// Shutdown mocks the DismShutdown call to the DISM API.
func (b *Backend) Shutdown() (err error) {
	defer decorate.OnError(&err, "DismShutdown")

	if b.ShutdownError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return dismErr(dismerror.CodeNotInitialized)
	}
	if len(b.sessions) != 0 {
		return dismErr(dismerror.CodeOpenSessionHandles)
	}

	b.initialized = false
	return nil
}

// OpenSession mocks the DismOpenSession call to the DISM API.
func (b *Backend) OpenSession(imagePath, windowsDir, systemDrive string) (session backend.Session, err error) {
	defer decorate.OnError(&err, "DismOpenSession")

	if b.OpenSessionError {
		return 0, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return 0, dismErr(dismerror.CodeNotInitialized)
	}

	var t *target
	if imagePath == backend.OnlineImagePath {
		t = b.online
	} else {
		m, ok := b.mounts[imagePath]
		if !ok {
			return 0, fmt.Errorf("failed call: no image is mounted at %q", imagePath)
		}
		t = m.target
	}

	session = b.nextSession
	b.nextSession++
	b.sessions[session] = t

	return session, nil
}

// CloseSession mocks the DismCloseSession call to the DISM API.
func (b *Backend) CloseSession(session backend.Session) (err error) {
	defer decorate.OnError(&err, "DismCloseSession")

	if b.CloseSessionError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.sessions[session]; !ok {
		return dismErr(dismerror.CodeInvalidSession)
	}

	delete(b.sessions, session)
	return nil
}

// MountImage mocks the DismMountImage call to the DISM API.
func (b *Backend) MountImage(imageFilePath, mountPath string, imageIndex uint32, imageName string, identifier flags.ImageIdentifier, mountFlags flags.MountFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismMountImage")

	if b.MountImageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return dismErr(dismerror.CodeNotInitialized)
	}

	if _, ok := b.mounts[mountPath]; ok {
		return fmt.Errorf("failed call: an image is already mounted at %q", mountPath)
	}

	images := b.imagesFor(imageFilePath)
	index, err := resolveImage(images, imageIndex, imageName, identifier)
	if err != nil {
		return err
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	mode := info.MountReadWrite
	if flags.UnpackMount(mountFlags).ReadOnly {
		mode = info.MountReadOnly
	}

	guid, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("could not generate UUID: %v", err)
	}

	b.mounts[mountPath] = &mount{
		guid: fmt.Sprintf("{%s}", guid.String()),
		info: info.MountedImage{
			MountPath:     mountPath,
			ImageFilePath: imageFilePath,
			ImageIndex:    index,
			MountMode:     mode,
			MountStatus:   info.MountStatusOK,
		},
		target: newTarget(),
	}

	return nil
}

// UnmountImage mocks the DismUnmountImage call to the DISM API.
func (b *Backend) UnmountImage(mountPath string, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismUnmountImage")

	if b.UnmountImageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return dismErr(dismerror.CodeNotInitialized)
	}

	m, ok := b.mounts[mountPath]
	if !ok {
		return dismErr(dismerror.CodeUnableToUnmount)
	}

	for _, t := range b.sessions {
		if t == m.target {
			return dismErr(dismerror.CodeOpenHandlesOnUnmount)
		}
	}

	if !flags.UnpackCommit(commit).Discard && m.info.MountMode == info.MountReadOnly {
		return fmt.Errorf("failed call: image %s is mounted read only", m.guid)
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	delete(b.mounts, mountPath)
	return nil
}

// RemountImage mocks the DismRemountImage call to the DISM API.
func (b *Backend) RemountImage(mountPath string) (err error) {
	defer decorate.OnError(&err, "DismRemountImage")

	if b.RemountImageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return dismErr(dismerror.CodeNotInitialized)
	}

	m, ok := b.mounts[mountPath]
	if !ok {
		return fmt.Errorf("failed call: no image is mounted at %q", mountPath)
	}

	m.info.MountStatus = info.MountStatusOK
	return nil
}

// CommitImage mocks the DismCommitImage call to the DISM API.
func (b *Backend) CommitImage(session backend.Session, commit flags.CommitFlags, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismCommitImage")

	if b.CommitImageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	m := b.findMount(t)
	if m == nil {
		return errors.New("failed call: the online image cannot be committed")
	}
	if m.info.MountMode == info.MountReadOnly {
		return fmt.Errorf("failed call: image %s is mounted read only", m.guid)
	}

	return emitProgress(bridge)
}

// MountedImages mocks the DismGetMountedImageInfo call to the DISM API.
func (b *Backend) MountedImages() (images []info.MountedImage, err error) {
	defer decorate.OnError(&err, "DismGetMountedImageInfo")

	if b.MountedImagesError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return nil, dismErr(dismerror.CodeNotInitialized)
	}

	for _, m := range b.mounts {
		images = append(images, m.info)
	}
	sort.Slice(images, func(i, j int) bool { return images[i].MountPath < images[j].MountPath })

	return images, nil
}

// ImageInfo mocks the DismGetImageInfo call to the DISM API.
func (b *Backend) ImageInfo(imageFilePath string) (images []info.Image, err error) {
	defer decorate.OnError(&err, "DismGetImageInfo")

	if b.ImageInfoError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return nil, dismErr(dismerror.CodeNotInitialized)
	}

	return append([]info.Image{}, b.imagesFor(imageFilePath)...), nil
}

// CleanupMountpoints mocks the DismCleanupMountpoints call to the DISM API.
func (b *Backend) CleanupMountpoints() (err error) {
	defer decorate.OnError(&err, "DismCleanupMountpoints")

	if b.CleanupMountpointsError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return dismErr(dismerror.CodeNotInitialized)
	}

	for path, m := range b.mounts {
		if m.info.MountStatus == info.MountStatusOK {
			continue
		}
		delete(b.mounts, path)
	}

	return nil
}

// AddDriver mocks the DismAddDriver call to the DISM API.
func (b *Backend) AddDriver(session backend.Session, driverPath string, forceUnsigned bool) (err error) {
	defer decorate.OnError(&err, "DismAddDriver")

	if b.AddDriverError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	signature := info.SignatureSigned
	if forceUnsigned {
		signature = info.SignatureUnsigned
	}

	t.oemCount++
	t.drivers = append(t.drivers, info.DriverPackage{
		PublishedName:    fmt.Sprintf("oem%d.inf", t.oemCount),
		OriginalFileName: driverPath,
		ClassName:        "Unknown",
		DriverSignature:  signature,
		ProviderName:     "Contoso",
		Date:             installTime,
		MajorVersion:     1,
	})

	return nil
}

// RemoveDriver mocks the DismRemoveDriver call to the DISM API.
func (b *Backend) RemoveDriver(session backend.Session, driverPath string) (err error) {
	defer decorate.OnError(&err, "DismRemoveDriver")

	if b.RemoveDriverError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	for i, d := range t.drivers {
		if d.PublishedName != driverPath && d.OriginalFileName != driverPath {
			continue
		}
		if d.InBox {
			return fmt.Errorf("failed call: %s is an inbox driver", d.PublishedName)
		}
		t.drivers = append(t.drivers[:i], t.drivers[i+1:]...)
		return nil
	}

	return fmt.Errorf("failed call: driver %q not found in the image", driverPath)
}

// Drivers mocks the DismGetDrivers call to the DISM API.
func (b *Backend) Drivers(session backend.Session, allDrivers bool) (drivers []info.DriverPackage, err error) {
	defer decorate.OnError(&err, "DismGetDrivers")

	if b.DriversError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return nil, err
	}

	for _, d := range t.drivers {
		if d.InBox && !allDrivers {
			continue
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// DriverInfo mocks the DismGetDriverInfo call to the DISM API.
func (b *Backend) DriverInfo(session backend.Session, driverPath string) (drivers []info.Driver, err error) {
	defer decorate.OnError(&err, "DismGetDriverInfo")

	if b.DriverInfoError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return nil, err
	}

	for _, d := range t.drivers {
		if d.PublishedName != driverPath && d.OriginalFileName != driverPath {
			continue
		}
		return []info.Driver{
			{
				ManufacturerName:    d.ProviderName,
				HardwareDescription: d.ClassDescription,
				HardwareID:          fmt.Sprintf(`PCI\VEN_8086&DEV_%04X`, t.oemCount),
				Architecture:        9, // IMAGE_FILE_MACHINE_AMD64
				ServiceName:         strings.TrimSuffix(d.PublishedName, ".inf"),
			},
		}, nil
	}

	return nil, fmt.Errorf("failed call: driver %q not found in the image", driverPath)
}

// EnableFeature mocks the DismEnableFeature call to the DISM API.
func (b *Backend) EnableFeature(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier, limitAccess bool, sourcePaths []string, enableAll bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismEnableFeature")

	if b.EnableFeatureError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	entry, ok := t.features[featureName]
	if !ok {
		return fmt.Errorf("failed call: unknown feature %q", featureName)
	}

	// A removed payload must come from somewhere: sources, or Windows Update
	// unless access to it was cut off.
	if entry.state == info.StateRemoved && limitAccess && len(sourcePaths) == 0 {
		return fmt.Errorf("failed call: the source files for feature %q are not available", featureName)
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	enabled := info.StateInstalled
	if b.EnableFeatureRebootRequired {
		enabled = info.StateInstallPending
	}

	entry.state = enabled
	if enableAll {
		for parent := entry.parent; parent != ""; {
			p, ok := t.features[parent]
			if !ok {
				break
			}
			p.state = enabled
			parent = p.parent
		}
	}

	if b.EnableFeatureRebootRequired {
		return dismerror.ErrRebootRequired
	}
	return nil
}

// DisableFeature mocks the DismDisableFeature call to the DISM API.
func (b *Backend) DisableFeature(session backend.Session, featureName, packageName string, removePayload bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismDisableFeature")

	if b.DisableFeatureError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	entry, ok := t.features[featureName]
	if !ok {
		return fmt.Errorf("failed call: unknown feature %q", featureName)
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	switch {
	case b.DisableFeatureRebootRequired:
		entry.state = info.StateUninstallPending
	case removePayload:
		entry.state = info.StateRemoved
	default:
		entry.state = info.StateStaged
	}

	if b.DisableFeatureRebootRequired {
		return dismerror.ErrRebootRequired
	}
	return nil
}

// Features mocks the DismGetFeatures call to the DISM API.
func (b *Backend) Features(session backend.Session, identifier string, packageID flags.PackageIdentifier) (features []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatures")

	if b.FeaturesError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return nil, err
	}

	for name, entry := range t.features {
		features = append(features, info.Feature{FeatureName: name, State: entry.state})
	}
	sort.Slice(features, func(i, j int) bool { return features[i].FeatureName < features[j].FeatureName })

	return features, nil
}

// FeatureInfo mocks the DismGetFeatureInfo call to the DISM API.
func (b *Backend) FeatureInfo(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (feature info.FeatureInfo, err error) {
	defer decorate.OnError(&err, "DismGetFeatureInfo")

	if b.FeatureInfoError {
		return feature, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return feature, err
	}

	entry, ok := t.features[featureName]
	if !ok {
		return feature, fmt.Errorf("failed call: unknown feature %q", featureName)
	}

	return info.FeatureInfo{
		FeatureName:     featureName,
		FeatureState:    entry.state,
		DisplayName:     entry.displayName,
		Description:     entry.description,
		RestartRequired: info.RestartPossible,
	}, nil
}

// FeatureParents mocks the DismGetFeatureParent call to the DISM API.
func (b *Backend) FeatureParents(session backend.Session, featureName, identifier string, packageID flags.PackageIdentifier) (parents []info.Feature, err error) {
	defer decorate.OnError(&err, "DismGetFeatureParent")

	if b.FeatureParentsError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return nil, err
	}

	entry, ok := t.features[featureName]
	if !ok {
		return nil, fmt.Errorf("failed call: unknown feature %q", featureName)
	}

	if entry.parent == "" {
		return nil, nil
	}

	parent, ok := t.features[entry.parent]
	if !ok {
		return nil, nil
	}

	return []info.Feature{{FeatureName: entry.parent, State: parent.state}}, nil
}

// AddPackage mocks the DismAddPackage call to the DISM API.
func (b *Backend) AddPackage(session backend.Session, packagePath string, ignoreCheck, preventPending bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismAddPackage")

	if b.AddPackageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	name := packageNameFromPath(packagePath)
	if _, ok := t.packages[name]; ok {
		return fmt.Errorf("failed call: package %q is already installed", name)
	}

	if preventPending && b.AddPackageRebootRequired {
		return fmt.Errorf("failed call: package %q needs a pending operation", name)
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	installed := info.StateInstalled
	if b.AddPackageRebootRequired {
		installed = info.StateInstallPending
	}

	t.packages[name] = &packageEntry{
		state:       installed,
		releaseType: info.ReleaseUpdate,
		displayName: name,
	}

	if b.AddPackageRebootRequired {
		return dismerror.ErrRebootRequired
	}
	return nil
}

// RemovePackage mocks the DismRemovePackage call to the DISM API.
func (b *Backend) RemovePackage(session backend.Session, identifier string, packageID flags.PackageIdentifier, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRemovePackage")

	if b.RemovePackageError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	name, err := resolvePackage(t, identifier, packageID)
	if err != nil {
		return err
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	if b.RemovePackageRebootRequired {
		t.packages[name].state = info.StateUninstallPending
		return dismerror.ErrRebootRequired
	}

	delete(t.packages, name)
	return nil
}

// Packages mocks the DismGetPackages call to the DISM API.
func (b *Backend) Packages(session backend.Session) (packages []info.Package, err error) {
	defer decorate.OnError(&err, "DismGetPackages")

	if b.PackagesError {
		return nil, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return nil, err
	}

	for name, entry := range t.packages {
		packages = append(packages, info.Package{
			PackageName:  name,
			PackageState: entry.state,
			ReleaseType:  entry.releaseType,
			InstallTime:  installTime,
		})
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].PackageName < packages[j].PackageName })

	return packages, nil
}

// PackageInfo mocks the DismGetPackageInfo call to the DISM API.
func (b *Backend) PackageInfo(session backend.Session, identifier string, packageID flags.PackageIdentifier) (pkg info.PackageInfo, err error) {
	defer decorate.OnError(&err, "DismGetPackageInfo")

	if b.PackageInfoError {
		return pkg, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return pkg, err
	}

	name, err := resolvePackage(t, identifier, packageID)
	if err != nil {
		return pkg, err
	}
	entry := t.packages[name]

	var features []info.Feature
	for featureName, feature := range t.features {
		features = append(features, info.Feature{FeatureName: featureName, State: feature.state})
	}
	sort.Slice(features, func(i, j int) bool { return features[i].FeatureName < features[j].FeatureName })

	return info.PackageInfo{
		PackageName:     name,
		PackageState:    entry.state,
		ReleaseType:     entry.releaseType,
		InstallTime:     installTime,
		Applicable:      true,
		Company:         "Microsoft Corporation",
		CreationTime:    installTime,
		DisplayName:     entry.displayName,
		ProductName:     "Microsoft-Windows-Foundation",
		ProductVersion:  "10.0.22621.1",
		RestartRequired: info.RestartPossible,
		Features:        features,
	}, nil
}

// CheckImageHealth mocks the DismCheckImageHealth call to the DISM API.
func (b *Backend) CheckImageHealth(session backend.Session, scanImage bool, bridge *progress.Bridge) (health state.Health, err error) {
	defer decorate.OnError(&err, "DismCheckImageHealth")

	if b.CheckImageHealthError {
		return state.Error, Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return state.Error, err
	}

	if !scanImage {
		// The quick check only reads the flag a previous scan or servicing
		// operation left behind, and the mock's store never corrupts.
		return t.health, nil
	}

	if err := emitProgress(bridge); err != nil {
		return state.Error, err
	}

	return t.health, nil
}

// RestoreImageHealth mocks the DismRestoreImageHealth call to the DISM API.
func (b *Backend) RestoreImageHealth(session backend.Session, sourcePaths []string, limitAccess bool, bridge *progress.Bridge) (err error) {
	defer decorate.OnError(&err, "DismRestoreImageHealth")

	if b.RestoreImageHealthError {
		return Error{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := b.sessionTarget(session)
	if err != nil {
		return err
	}

	if t.health == state.NonRepairable {
		return errors.New("failed call: the image is not repairable")
	}
	if limitAccess && len(sourcePaths) == 0 {
		return errors.New("failed call: the repair source is not available")
	}

	if err := emitProgress(bridge); err != nil {
		return err
	}

	t.health = state.Healthy
	return nil
}

// dismErr builds the error the real backend would surface for a DISM status
// code, so that callers can match both backends with the same errors.Is.
func dismErr(code uint32) error {
	return &dismerror.NativeError{Code: code}
}

// emitProgress plays a fixed progress sequence through the bridge, checking
// the cancellation signal between reports like the native library does. The
// handler runs on the operation's own call stack, like the native callback.
func emitProgress(bridge *progress.Bridge) error {
	const total = 1000
	for _, current := range []uint32{0, 250, 500, 750, total} {
		bridge.Notify(current, total)
		if bridge.Cancelled() {
			return dismerror.ErrCancelled
		}
	}
	return nil
}

// sessionTarget resolves a session token to the image state behind it.
// The caller must hold b.mu.
func (b *Backend) sessionTarget(session backend.Session) (*target, error) {
	t, ok := b.sessions[session]
	if !ok {
		return nil, dismErr(dismerror.CodeInvalidSession)
	}
	return t, nil
}

// findMount returns the mount backed by the given target, or nil for the
// online image. The caller must hold b.mu.
func (b *Backend) findMount(t *target) *mount {
	for _, m := range b.mounts {
		if m.target == t {
			return m
		}
	}
	return nil
}

// imagesFor returns the catalogue of the given image file, synthesizing a
// two-image WIM the first time a file is seen. The caller must hold b.mu.
func (b *Backend) imagesFor(imageFilePath string) []info.Image {
	if images, ok := b.images[imageFilePath]; ok {
		return images
	}

	base := strings.TrimSuffix(filepath.Base(imageFilePath), filepath.Ext(imageFilePath))

	images := []info.Image{
		{
			ImageType:        info.ImageTypeWim,
			ImageIndex:       1,
			ImageName:        base,
			ImageDescription: base,
			ImageSize:        15 * 1024 * 1024 * 1024,
			Architecture:     9, // IMAGE_FILE_MACHINE_AMD64
			ProductName:      "Microsoft® Windows® Operating System",
			EditionID:        "Core",
			InstallationType: "Client",
			ProductType:      "WinNT",
			ProductSuite:     "Terminal Server",
			MajorVersion:     10,
			Build:            22621,
			SpBuild:          1,
			Bootable:         info.BootableUnknown,
			SystemRoot:       "WINDOWS",
			Languages:        []string{"en-US"},
			DefaultLanguage:  "en-US",
		},
		{
			ImageType:        info.ImageTypeWim,
			ImageIndex:       2,
			ImageName:        base + " Pro",
			ImageDescription: base + " Pro",
			ImageSize:        16 * 1024 * 1024 * 1024,
			Architecture:     9,
			ProductName:      "Microsoft® Windows® Operating System",
			EditionID:        "Professional",
			InstallationType: "Client",
			ProductType:      "WinNT",
			ProductSuite:     "Terminal Server",
			MajorVersion:     10,
			Build:            22621,
			SpBuild:          1,
			Bootable:         info.BootableUnknown,
			SystemRoot:       "WINDOWS",
			Languages:        []string{"en-US", "es-ES"},
			DefaultLanguage:  "en-US",
		},
	}

	b.images[imageFilePath] = images
	return images
}

// resolveImage validates the image selector against a catalogue and returns
// the selected index.
func resolveImage(images []info.Image, index uint32, name string, identifier flags.ImageIdentifier) (uint32, error) {
	switch identifier {
	case flags.ImageName:
		for _, img := range images {
			if img.ImageName == name {
				return img.ImageIndex, nil
			}
		}
		return 0, dismErr(dismerror.CodeInvalidImageName)
	default:
		for _, img := range images {
			if img.ImageIndex == index {
				return index, nil
			}
		}
		return 0, dismErr(dismerror.CodeInvalidImageIndex)
	}
}

// resolvePackage maps a package identifier to an installed package name.
// The caller must hold b.mu via its target.
func resolvePackage(t *target, identifier string, packageID flags.PackageIdentifier) (string, error) {
	var name string
	switch packageID {
	case flags.PackageName:
		name = identifier
	case flags.PackagePath:
		name = packageNameFromPath(identifier)
	default:
		return "", errors.New("failed call: a package identifier is required")
	}

	if _, ok := t.packages[name]; !ok {
		return "", fmt.Errorf("failed call: package %q not found in the image", name)
	}
	return name, nil
}

// packageNameFromPath derives the identity a .cab or .msu would declare from
// its file name.
func packageNameFromPath(packagePath string) string {
	return strings.TrimSuffix(filepath.Base(packagePath), filepath.Ext(packagePath))
}
