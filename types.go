package godism

// This file re-exports the value objects and enumerations that operations
// return, so that callers never have to import the internal packages.

import (
	"github.com/ubuntu/godism/internal/flags"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/state"
)

// Value objects returned by queries. They own all their memory and can be
// retained for as long as the caller wants.
type (
	// MountedImage describes one entry of the machine-wide mounted image table.
	MountedImage = info.MountedImage

	// Image describes one image inside a .wim or .vhd file.
	Image = info.Image

	// Package is one row of a package enumeration.
	Package = info.Package

	// PackageInfo is the full description of a single package.
	PackageInfo = info.PackageInfo

	// Feature is one row of a feature enumeration.
	Feature = info.Feature

	// FeatureInfo is the full description of a single feature.
	FeatureInfo = info.FeatureInfo

	// CustomProperty is an advanced name/value attribute of a package or feature.
	CustomProperty = info.CustomProperty

	// DriverPackage describes an .inf driver package known to an image.
	DriverPackage = info.DriverPackage

	// Driver describes one hardware binding of a driver package.
	Driver = info.Driver
)

// ImageType is the format of an image file.
type ImageType = info.ImageType

const (
	ImageTypeUnsupported = info.ImageTypeUnsupported
	ImageTypeWim         = info.ImageTypeWim
	ImageTypeVhd         = info.ImageTypeVhd
)

// MountMode says whether a mounted image accepts changes.
type MountMode = info.MountMode

const (
	MountReadWrite = info.MountReadWrite
	MountReadOnly  = info.MountReadOnly
)

// MountStatus is the condition of a mount point as reported by the engine.
type MountStatus = info.MountStatus

const (
	MountStatusOK           = info.MountStatusOK
	MountStatusNeedsRemount = info.MountStatusNeedsRemount
	MountStatusInvalid      = info.MountStatusInvalid
)

// FeatureState is the install state of a feature or package.
type FeatureState = info.FeatureState

const (
	StateNotPresent         = info.StateNotPresent
	StateUninstallPending   = info.StateUninstallPending
	StateStaged             = info.StateStaged
	StateRemoved            = info.StateRemoved
	StateInstalled          = info.StateInstalled
	StateInstallPending     = info.StateInstallPending
	StateSuperseded         = info.StateSuperseded
	StatePartiallyInstalled = info.StatePartiallyInstalled
)

// RestartType says whether an operation needs a reboot to finish.
type RestartType = info.RestartType

const (
	RestartNo       = info.RestartNo
	RestartPossible = info.RestartPossible
	RestartRequired = info.RestartRequired
)

// DriverSignature is the signing state of a driver package.
type DriverSignature = info.DriverSignature

const (
	SignatureUnknown  = info.SignatureUnknown
	SignatureUnsigned = info.SignatureUnsigned
	SignatureSigned   = info.SignatureSigned
)

// Health is the corruption state of an image's component store.
type Health = state.Health

const (
	ImageHealthy       = state.Healthy
	ImageRepairable    = state.Repairable
	ImageNonRepairable = state.NonRepairable
)

// LogLevel controls how much the engine writes to its log file.
type LogLevel = flags.LogLevel

const (
	LogErrors             = flags.LogErrors
	LogErrorsWarnings     = flags.LogErrorsWarnings
	LogErrorsWarningsInfo = flags.LogErrorsWarningsInfo
)
