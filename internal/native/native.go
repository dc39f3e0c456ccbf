// Package native mirrors the fixed memory layout of the structures returned
// by dismapi.dll and decodes them into the owned values of package info.
//
// The mirrors match the 64-bit layout of dismapi.h (the only one DISM ships
// for modern Windows). Decoding copies every field out of native memory, so
// the results stay valid after the native buffer is released with DismDelete.
package native

import (
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/ubuntu/godism/internal/info"
)

// Windows' typedefs.
type wBOOL = int32 // Windows' BOOL: a 4-byte integer, zero meaning FALSE

// maxStringLen is the largest native string we are willing to walk, to
// prevent or mitigate buffer overreads on a missing null terminator.
const maxStringLen = 32768

// SystemTime mirrors Windows' SYSTEMTIME.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// Time converts the timestamp to an absolute point in time, in UTC.
// An all-zero SystemTime decodes to the zero time.Time.
func (t SystemTime) Time() time.Time {
	if t == (SystemTime{}) {
		return time.Time{}
	}
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second),
		int(t.Milliseconds)*int(time.Millisecond), time.UTC)
}

// DismString mirrors Windows' DismString.
type DismString struct {
	Value *uint16
}

// DismMountedImageInfo mirrors Windows' DismMountedImageInfo.
type DismMountedImageInfo struct {
	MountPath     *uint16
	ImageFilePath *uint16
	ImageIndex    uint32
	MountMode     int32
	MountStatus   int32
}

// DismImageInfo mirrors Windows' DismImageInfo.
type DismImageInfo struct {
	ImageType            int32
	ImageIndex           uint32
	ImageName            *uint16
	ImageDescription     *uint16
	ImageSize            uint64
	Architecture         uint32
	ProductName          *uint16
	EditionID            *uint16
	InstallationType     *uint16
	Hal                  *uint16
	ProductType          *uint16
	ProductSuite         *uint16
	MajorVersion         uint32
	MinorVersion         uint32
	Build                uint32
	SpBuild              uint32
	SpLevel              uint32
	Bootable             int32
	SystemRoot           *uint16
	Language             *DismString
	LanguageCount        uint32
	DefaultLanguageIndex uint32
	CustomizedInfo       unsafe.Pointer
}

// DismPackage mirrors Windows' DismPackage.
type DismPackage struct {
	PackageName  *uint16
	PackageState int32
	ReleaseType  int32
	InstallTime  SystemTime
}

// DismPackageInfo mirrors Windows' DismPackageInfo.
type DismPackageInfo struct {
	PackageName         *uint16
	PackageState        int32
	ReleaseType         int32
	InstallTime         SystemTime
	Applicable          wBOOL
	Copyright           *uint16
	Company             *uint16
	CreationTime        SystemTime
	DisplayName         *uint16
	Description         *uint16
	InstallClient       *uint16
	InstallPackageName  *uint16
	LastUpdateTime      SystemTime
	ProductName         *uint16
	ProductVersion      *uint16
	RestartRequired     int32
	FullyOffline        int32
	SupportInformation  *uint16
	CustomProperty      *DismCustomProperty
	CustomPropertyCount uint32
	Feature             *DismFeature
	FeatureCount        uint32
}

// DismFeature mirrors Windows' DismFeature.
type DismFeature struct {
	FeatureName *uint16
	State       int32
}

// DismFeatureInfo mirrors Windows' DismFeatureInfo.
type DismFeatureInfo struct {
	FeatureName         *uint16
	FeatureState        int32
	DisplayName         *uint16
	Description         *uint16
	RestartRequired     int32
	CustomProperty      *DismCustomProperty
	CustomPropertyCount uint32
}

// DismCustomProperty mirrors Windows' DismCustomProperty.
type DismCustomProperty struct {
	Name  *uint16
	Value *uint16
	Path  *uint16
}

// DismDriverPackage mirrors Windows' DismDriverPackage.
type DismDriverPackage struct {
	PublishedName    *uint16
	OriginalFileName *uint16
	InBox            wBOOL
	CatalogFile      *uint16
	ClassName        *uint16
	ClassGUID        *uint16
	ClassDescription *uint16
	BootCritical     wBOOL
	DriverSignature  int32
	ProviderName     *uint16
	Date             SystemTime
	MajorVersion     uint32
	MinorVersion     uint32
	Build            uint32
	Revision         uint32
}

// DismDriver mirrors Windows' DismDriver.
type DismDriver struct {
	ManufacturerName    *uint16
	HardwareDescription *uint16
	HardwareID          *uint16
	Architecture        uint32
	ServiceName         *uint16
	CompatibleIDs       *uint16
	ExcludeIDs          *uint16
}

// structs reinterprets base as a contiguous array of count fixed-layout T
// values. The stride is T's marshaled size, so successive elements are read
// at base + index*sizeof(T).
//
// A nil base with a zero count yields an empty array. A nil base with a
// nonzero count breaks the native contract and panics: this is a bug in the
// native layer, not a recoverable caller error.
func structs[T any](base unsafe.Pointer, count uint32) []T {
	if base == nil && count == 0 {
		return nil
	}
	return unsafe.Slice((*T)(base), count)
}

// String copies a null-terminated UTF-16 native string into an owned Go
// string. A nil pointer decodes to the empty string.
func String(p *uint16) string {
	if p == nil {
		return ""
	}

	size := 0
	for ptr := p; *ptr != 0 && size < maxStringLen; size++ {
		ptr = charNext(ptr)
	}
	return string(utf16.Decode(unsafe.Slice(p, size)))
}

// charNext advances a *uint16 by one position.
func charNext(ptr *uint16) *uint16 {
	return (*uint16)(unsafe.Pointer(uintptr(unsafe.Pointer(ptr)) + unsafe.Sizeof(uint16(0))))
}

func boolOf(b wBOOL) bool {
	return b != 0
}

// MountedImages decodes an array of count DismMountedImageInfo structs.
func MountedImages(base unsafe.Pointer, count uint32) []info.MountedImage {
	images := make([]info.MountedImage, 0, count)
	for _, m := range structs[DismMountedImageInfo](base, count) {
		images = append(images, info.MountedImage{
			MountPath:     String(m.MountPath),
			ImageFilePath: String(m.ImageFilePath),
			ImageIndex:    m.ImageIndex,
			MountMode:     info.MountMode(m.MountMode),
			MountStatus:   info.MountStatus(m.MountStatus),
		})
	}
	return images
}

// Images decodes an array of count DismImageInfo structs.
func Images(base unsafe.Pointer, count uint32) []info.Image {
	images := make([]info.Image, 0, count)
	for _, m := range structs[DismImageInfo](base, count) {
		languages := make([]string, 0, m.LanguageCount)
		for _, l := range structs[DismString](unsafe.Pointer(m.Language), m.LanguageCount) {
			languages = append(languages, String(l.Value))
		}

		var defaultLanguage string
		if int(m.DefaultLanguageIndex) < len(languages) {
			defaultLanguage = languages[m.DefaultLanguageIndex]
		}

		images = append(images, info.Image{
			ImageType:        info.ImageType(m.ImageType),
			ImageIndex:       m.ImageIndex,
			ImageName:        String(m.ImageName),
			ImageDescription: String(m.ImageDescription),
			ImageSize:        m.ImageSize,
			Architecture:     m.Architecture,
			ProductName:      String(m.ProductName),
			EditionID:        String(m.EditionID),
			InstallationType: String(m.InstallationType),
			HAL:              String(m.Hal),
			ProductType:      String(m.ProductType),
			ProductSuite:     String(m.ProductSuite),
			MajorVersion:     m.MajorVersion,
			MinorVersion:     m.MinorVersion,
			Build:            m.Build,
			SpBuild:          m.SpBuild,
			SpLevel:          m.SpLevel,
			Bootable:         info.Bootable(m.Bootable),
			SystemRoot:       String(m.SystemRoot),
			Languages:        languages,
			DefaultLanguage:  defaultLanguage,
		})
	}
	return images
}

// Packages decodes an array of count DismPackage structs.
func Packages(base unsafe.Pointer, count uint32) []info.Package {
	packages := make([]info.Package, 0, count)
	for _, m := range structs[DismPackage](base, count) {
		packages = append(packages, info.Package{
			PackageName:  String(m.PackageName),
			PackageState: info.FeatureState(m.PackageState),
			ReleaseType:  info.ReleaseType(m.ReleaseType),
			InstallTime:  m.InstallTime.Time(),
		})
	}
	return packages
}

// PackageInfo decodes a single DismPackageInfo struct.
func PackageInfo(base unsafe.Pointer) info.PackageInfo {
	m := (*DismPackageInfo)(base)
	return info.PackageInfo{
		PackageName:        String(m.PackageName),
		PackageState:       info.FeatureState(m.PackageState),
		ReleaseType:        info.ReleaseType(m.ReleaseType),
		InstallTime:        m.InstallTime.Time(),
		Applicable:         boolOf(m.Applicable),
		Copyright:          String(m.Copyright),
		Company:            String(m.Company),
		CreationTime:       m.CreationTime.Time(),
		DisplayName:        String(m.DisplayName),
		Description:        String(m.Description),
		InstallClient:      String(m.InstallClient),
		InstallPackageName: String(m.InstallPackageName),
		LastUpdateTime:     m.LastUpdateTime.Time(),
		ProductName:        String(m.ProductName),
		ProductVersion:     String(m.ProductVersion),
		RestartRequired:    info.RestartType(m.RestartRequired),
		SupportInformation: String(m.SupportInformation),
		CustomProperties:   CustomProperties(unsafe.Pointer(m.CustomProperty), m.CustomPropertyCount),
		Features:           Features(unsafe.Pointer(m.Feature), m.FeatureCount),
	}
}

// Features decodes an array of count DismFeature structs.
func Features(base unsafe.Pointer, count uint32) []info.Feature {
	features := make([]info.Feature, 0, count)
	for _, m := range structs[DismFeature](base, count) {
		features = append(features, info.Feature{
			FeatureName: String(m.FeatureName),
			State:       info.FeatureState(m.State),
		})
	}
	return features
}

// FeatureInfo decodes a single DismFeatureInfo struct.
func FeatureInfo(base unsafe.Pointer) info.FeatureInfo {
	m := (*DismFeatureInfo)(base)
	return info.FeatureInfo{
		FeatureName:      String(m.FeatureName),
		FeatureState:     info.FeatureState(m.FeatureState),
		DisplayName:      String(m.DisplayName),
		Description:      String(m.Description),
		RestartRequired:  info.RestartType(m.RestartRequired),
		CustomProperties: CustomProperties(unsafe.Pointer(m.CustomProperty), m.CustomPropertyCount),
	}
}

// CustomProperties decodes an array of count DismCustomProperty structs.
func CustomProperties(base unsafe.Pointer, count uint32) []info.CustomProperty {
	properties := make([]info.CustomProperty, 0, count)
	for _, m := range structs[DismCustomProperty](base, count) {
		properties = append(properties, info.CustomProperty{
			Name:  String(m.Name),
			Value: String(m.Value),
			Path:  String(m.Path),
		})
	}
	return properties
}

// DriverPackages decodes an array of count DismDriverPackage structs.
func DriverPackages(base unsafe.Pointer, count uint32) []info.DriverPackage {
	drivers := make([]info.DriverPackage, 0, count)
	for _, m := range structs[DismDriverPackage](base, count) {
		drivers = append(drivers, info.DriverPackage{
			PublishedName:    String(m.PublishedName),
			OriginalFileName: String(m.OriginalFileName),
			InBox:            boolOf(m.InBox),
			CatalogFile:      String(m.CatalogFile),
			ClassName:        String(m.ClassName),
			ClassGUID:        String(m.ClassGUID),
			ClassDescription: String(m.ClassDescription),
			BootCritical:     boolOf(m.BootCritical),
			DriverSignature:  info.DriverSignature(m.DriverSignature),
			ProviderName:     String(m.ProviderName),
			Date:             m.Date.Time(),
			MajorVersion:     m.MajorVersion,
			MinorVersion:     m.MinorVersion,
			Build:            m.Build,
			Revision:         m.Revision,
		})
	}
	return drivers
}

// Drivers decodes an array of count DismDriver structs.
func Drivers(base unsafe.Pointer, count uint32) []info.Driver {
	drivers := make([]info.Driver, 0, count)
	for _, m := range structs[DismDriver](base, count) {
		drivers = append(drivers, info.Driver{
			ManufacturerName:    String(m.ManufacturerName),
			HardwareDescription: String(m.HardwareDescription),
			HardwareID:          String(m.HardwareID),
			Architecture:        m.Architecture,
			ServiceName:         String(m.ServiceName),
			CompatibleIDs:       String(m.CompatibleIDs),
			ExcludeIDs:          String(m.ExcludeIDs),
		})
	}
	return drivers
}
