// Package info defines the owned value objects that the backends decode
// DISM's native structures into. Once built, these values hold no reference
// to native memory and can be retained indefinitely.
package info

import "time"

// ImageType is the format of an image file.
// https://learn.microsoft.com/en-us/windows/win32/dism/dism-api-enumerations
type ImageType int32

const (
	ImageTypeUnsupported ImageType = -1
	ImageTypeWim         ImageType = 0
	ImageTypeVhd         ImageType = 1
)

// MountMode says whether a mounted image accepts changes.
type MountMode int32

const (
	MountReadWrite MountMode = 0
	MountReadOnly  MountMode = 1
)

func (m MountMode) String() string {
	switch m {
	case MountReadWrite:
		return "ReadWrite"
	case MountReadOnly:
		return "ReadOnly"
	}
	return "Unknown"
}

// MountStatus is the condition of a mount point as reported by DISM.
type MountStatus int32

const (
	MountStatusOK           MountStatus = 0
	MountStatusNeedsRemount MountStatus = 1
	MountStatusInvalid      MountStatus = 2
)

func (m MountStatus) String() string {
	switch m {
	case MountStatusOK:
		return "Ok"
	case MountStatusNeedsRemount:
		return "NeedsRemount"
	case MountStatusInvalid:
		return "Invalid"
	}
	return "Unknown"
}

// Bootable is DISM's three-valued answer to whether an image can boot.
type Bootable int32

const (
	BootableYes     Bootable = 0
	BootableNo      Bootable = 1
	BootableUnknown Bootable = 2
)

// FeatureState is the install state of a feature or package.
type FeatureState int32

const (
	StateNotPresent         FeatureState = 0
	StateUninstallPending   FeatureState = 1
	StateStaged             FeatureState = 2
	StateRemoved            FeatureState = 3
	StateInstalled          FeatureState = 4
	StateInstallPending     FeatureState = 5
	StateSuperseded         FeatureState = 6
	StatePartiallyInstalled FeatureState = 7
)

func (s FeatureState) String() string {
	switch s {
	case StateNotPresent:
		return "NotPresent"
	case StateUninstallPending:
		return "UninstallPending"
	case StateStaged:
		return "Staged"
	case StateRemoved:
		return "Removed"
	case StateInstalled:
		return "Installed"
	case StateInstallPending:
		return "InstallPending"
	case StateSuperseded:
		return "Superseded"
	case StatePartiallyInstalled:
		return "PartiallyInstalled"
	}
	return "Unknown"
}

// ReleaseType classifies a package.
type ReleaseType int32

const (
	ReleaseCriticalUpdate ReleaseType = 0
	ReleaseDriver         ReleaseType = 1
	ReleaseFeaturePack    ReleaseType = 2
	ReleaseHotfix         ReleaseType = 3
	ReleaseSecurityUpdate ReleaseType = 4
	ReleaseSoftwareUpdate ReleaseType = 5
	ReleaseUpdate         ReleaseType = 6
	ReleaseUpdateRollup   ReleaseType = 7
	ReleaseLanguagePack   ReleaseType = 8
	ReleaseFoundation     ReleaseType = 9
	ReleaseServicePack    ReleaseType = 10
	ReleaseProduct        ReleaseType = 11
	ReleaseLocalPack      ReleaseType = 12
	ReleaseOther          ReleaseType = 13
	ReleaseOnDemandPack   ReleaseType = 14
)

// RestartType says whether an operation needs a reboot to finish.
type RestartType int32

const (
	RestartNo       RestartType = 0
	RestartPossible RestartType = 1
	RestartRequired RestartType = 2
)

// DriverSignature is the signing state of a driver package.
type DriverSignature int32

const (
	SignatureUnknown  DriverSignature = 0
	SignatureUnsigned DriverSignature = 1
	SignatureSigned   DriverSignature = 2
)

// MountedImage describes one entry of the machine-wide mounted image table.
type MountedImage struct {
	MountPath     string
	ImageFilePath string
	ImageIndex    uint32
	MountMode     MountMode
	MountStatus   MountStatus
}

// Image describes one image inside a .wim or .vhd file.
type Image struct {
	ImageType        ImageType
	ImageIndex       uint32
	ImageName        string
	ImageDescription string
	ImageSize        uint64
	Architecture     uint32
	ProductName      string
	EditionID        string
	InstallationType string
	HAL              string
	ProductType      string
	ProductSuite     string
	MajorVersion     uint32
	MinorVersion     uint32
	Build            uint32
	SpBuild          uint32
	SpLevel          uint32
	Bootable         Bootable
	SystemRoot       string
	Languages        []string
	DefaultLanguage  string
}

// Package is one row of a package enumeration.
type Package struct {
	PackageName  string
	PackageState FeatureState
	ReleaseType  ReleaseType
	InstallTime  time.Time
}

// PackageInfo is the full description of a single package.
type PackageInfo struct {
	PackageName        string
	PackageState       FeatureState
	ReleaseType        ReleaseType
	InstallTime        time.Time
	Applicable         bool
	Copyright          string
	Company            string
	CreationTime       time.Time
	DisplayName        string
	Description        string
	InstallClient      string
	InstallPackageName string
	LastUpdateTime     time.Time
	ProductName        string
	ProductVersion     string
	RestartRequired    RestartType
	SupportInformation string
	CustomProperties   []CustomProperty
	Features           []Feature
}

// Feature is one row of a feature enumeration.
type Feature struct {
	FeatureName string
	State       FeatureState
}

// FeatureInfo is the full description of a single feature.
type FeatureInfo struct {
	FeatureName      string
	FeatureState     FeatureState
	DisplayName      string
	Description      string
	RestartRequired  RestartType
	CustomProperties []CustomProperty
}

// CustomProperty is an advanced name/value attribute of a package or feature.
type CustomProperty struct {
	Name  string
	Value string
	Path  string
}

// DriverPackage describes an .inf driver package known to an image.
type DriverPackage struct {
	PublishedName    string
	OriginalFileName string
	InBox            bool
	CatalogFile      string
	ClassName        string
	ClassGUID        string
	ClassDescription string
	BootCritical     bool
	DriverSignature  DriverSignature
	ProviderName     string
	Date             time.Time
	MajorVersion     uint32
	MinorVersion     uint32
	Build            uint32
	Revision         uint32
}

// Driver describes one hardware binding of a driver package.
type Driver struct {
	ManufacturerName    string
	HardwareDescription string
	HardwareID          string
	Architecture        uint32
	ServiceName         string
	CompatibleIDs       string
	ExcludeIDs          string
}
