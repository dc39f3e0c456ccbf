package native_test

import (
	"testing"
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/native"
)

// utf16Ptr builds a null-terminated UTF-16 string in Go memory, standing in
// for a native string owned by dismapi.dll.
func utf16Ptr(t *testing.T, s string) *uint16 {
	t.Helper()

	encoded := append(utf16.Encode([]rune(s)), 0)
	return &encoded[0]
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input  string
		nilPtr bool
	}{
		"Nil pointer decodes to empty": {nilPtr: true},
		"Empty string":                 {input: ""},
		"Plain text":                   {input: `C:\mount\windows`},
		"Non-ASCII text":               {input: "ñandú"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var ptr *uint16
			if !tc.nilPtr {
				ptr = utf16Ptr(t, tc.input)
			}

			got := native.String(ptr)
			require.Equal(t, tc.input, got, "Decoded string does not match the encoded source")
		})
	}
}

func TestDecodeEmptyStringMatchesNilPointer(t *testing.T) {
	t.Parallel()

	// Both a null pointer and a pointer to a lone terminator normalize to "".
	require.Equal(t, native.String(nil), native.String(utf16Ptr(t, "")),
		"nil pointer and empty native string should decode identically")
}

func TestSystemTime(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input native.SystemTime
		want  time.Time
	}{
		"All-zero decodes to the unset sentinel": {input: native.SystemTime{}, want: time.Time{}},
		"Timestamp decodes in UTC": {
			input: native.SystemTime{Year: 2024, Month: 3, Day: 14, Hour: 15, Minute: 9, Second: 26, Milliseconds: 535},
			want:  time.Date(2024, time.March, 14, 15, 9, 26, 535*int(time.Millisecond), time.UTC),
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.input.Time()
			require.True(t, tc.want.Equal(got), "SystemTime %v decoded to %v, expected %v", tc.input, got, tc.want)
			require.Equal(t, tc.want.IsZero(), got.IsZero(), "Unset sentinel mismatch")
		})
	}
}

func TestDecodeMountedImages(t *testing.T) {
	t.Parallel()

	source := []native.DismMountedImageInfo{
		{
			MountPath:     utf16Ptr(t, `C:\mount\a`),
			ImageFilePath: utf16Ptr(t, `C:\images\base.wim`),
			ImageIndex:    1,
			MountMode:     0, // read-write
			MountStatus:   0,
		},
		{
			MountPath:     utf16Ptr(t, `C:\mount\b`),
			ImageFilePath: utf16Ptr(t, `C:\images\base.wim`),
			ImageIndex:    2,
			MountMode:     1, // read-only
			MountStatus:   1,
		},
		{
			MountPath:  nil, // a null native string decodes as empty, not a fault
			ImageIndex: 3,
		},
	}

	got := native.MountedImages(unsafe.Pointer(&source[0]), uint32(len(source)))

	require.Len(t, got, len(source), "Decoding N elements must yield N entities")

	assert.Equal(t, info.MountedImage{
		MountPath:     `C:\mount\a`,
		ImageFilePath: `C:\images\base.wim`,
		ImageIndex:    1,
		MountMode:     info.MountReadWrite,
		MountStatus:   info.MountStatusOK,
	}, got[0], "First element decoded wrong")

	assert.Equal(t, info.MountedImage{
		MountPath:     `C:\mount\b`,
		ImageFilePath: `C:\images\base.wim`,
		ImageIndex:    2,
		MountMode:     info.MountReadOnly,
		MountStatus:   info.MountStatusNeedsRemount,
	}, got[1], "Second element decoded wrong: input order must be preserved")

	assert.Equal(t, info.MountedImage{ImageIndex: 3}, got[2], "Null strings must decode to empty values")
}

func TestDecodeEmptyArrays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, native.MountedImages(nil, 0), "nil base with zero count must decode to an empty collection")
	assert.Empty(t, native.Packages(nil, 0), "nil base with zero count must decode to an empty collection")
	assert.Empty(t, native.Features(nil, 0), "nil base with zero count must decode to an empty collection")
	assert.Empty(t, native.DriverPackages(nil, 0), "nil base with zero count must decode to an empty collection")

	buf := make([]native.DismFeature, 4)
	assert.Empty(t, native.Features(unsafe.Pointer(&buf[0]), 0), "zero count must win over a valid base")
}

func TestDecodeNilBaseWithCountPanics(t *testing.T) {
	t.Parallel()

	// A nil array base with a nonzero count means the native layer broke its
	// contract. That is an invariant break, not an error to paper over.
	require.Panics(t, func() { native.Features(nil, 3) })
}

func TestDecodePackages(t *testing.T) {
	t.Parallel()

	installTime := native.SystemTime{Year: 2023, Month: 11, Day: 2, Hour: 8}
	source := []native.DismPackage{
		{
			PackageName:  utf16Ptr(t, "Package_for_KB5011048"),
			PackageState: 4, // installed
			ReleaseType:  4, // security update
			InstallTime:  installTime,
		},
		{
			PackageName:  utf16Ptr(t, "Package_for_KB5012170"),
			PackageState: 2, // staged
			ReleaseType:  6, // update
		},
	}

	got := native.Packages(unsafe.Pointer(&source[0]), uint32(len(source)))

	require.Len(t, got, 2)
	assert.Equal(t, "Package_for_KB5011048", got[0].PackageName)
	assert.Equal(t, info.StateInstalled, got[0].PackageState)
	assert.Equal(t, info.ReleaseSecurityUpdate, got[0].ReleaseType)
	assert.True(t, got[0].InstallTime.Equal(installTime.Time()), "Install time decoded wrong")

	assert.Equal(t, "Package_for_KB5012170", got[1].PackageName)
	assert.Equal(t, info.StateStaged, got[1].PackageState)
	assert.True(t, got[1].InstallTime.IsZero(), "Zero SYSTEMTIME must decode to the unset sentinel")
}

func TestDecodePackageInfo(t *testing.T) {
	t.Parallel()

	features := []native.DismFeature{
		{FeatureName: utf16Ptr(t, "NetFx3"), State: 4},
		{FeatureName: utf16Ptr(t, "NetFx4"), State: 0},
	}
	properties := []native.DismCustomProperty{
		{Name: utf16Ptr(t, "Visibility"), Value: utf16Ptr(t, "public"), Path: nil},
	}

	source := native.DismPackageInfo{
		PackageName:         utf16Ptr(t, "Microsoft-Windows-Foundation-Package"),
		PackageState:        4,
		ReleaseType:         9, // foundation
		InstallTime:         native.SystemTime{Year: 2022, Month: 5, Day: 1},
		Applicable:          1,
		Copyright:           utf16Ptr(t, "Microsoft Corporation"),
		Company:             utf16Ptr(t, "Microsoft Corporation"),
		DisplayName:         utf16Ptr(t, "Windows Foundation"),
		Description:         nil,
		ProductName:         utf16Ptr(t, "Microsoft-Windows-Foundation"),
		ProductVersion:      utf16Ptr(t, "10.0.22621.1"),
		RestartRequired:     1, // possible
		CustomProperty:      &properties[0],
		CustomPropertyCount: uint32(len(properties)),
		Feature:             &features[0],
		FeatureCount:        uint32(len(features)),
	}

	got := native.PackageInfo(unsafe.Pointer(&source))

	assert.Equal(t, "Microsoft-Windows-Foundation-Package", got.PackageName)
	assert.Equal(t, info.ReleaseFoundation, got.ReleaseType)
	assert.True(t, got.Applicable, "BOOL 1 must decode to true")
	assert.Empty(t, got.Description, "Null description must decode to empty")
	assert.Equal(t, info.RestartPossible, got.RestartRequired)
	assert.True(t, got.CreationTime.IsZero(), "Unset creation time must decode to the sentinel")

	require.Len(t, got.Features, 2, "Nested feature array must decode fully")
	assert.Equal(t, info.Feature{FeatureName: "NetFx3", State: info.StateInstalled}, got.Features[0])
	assert.Equal(t, info.Feature{FeatureName: "NetFx4", State: info.StateNotPresent}, got.Features[1])

	require.Len(t, got.CustomProperties, 1)
	assert.Equal(t, info.CustomProperty{Name: "Visibility", Value: "public"}, got.CustomProperties[0])
}

func TestDecodeFeatureInfo(t *testing.T) {
	t.Parallel()

	source := native.DismFeatureInfo{
		FeatureName:     utf16Ptr(t, "VirtualMachinePlatform"),
		FeatureState:    4,
		DisplayName:     utf16Ptr(t, "Virtual Machine Platform"),
		Description:     utf16Ptr(t, "Enables platform support for virtual machines"),
		RestartRequired: 2, // required
	}

	got := native.FeatureInfo(unsafe.Pointer(&source))

	assert.Equal(t, "VirtualMachinePlatform", got.FeatureName)
	assert.Equal(t, info.StateInstalled, got.FeatureState)
	assert.Equal(t, "Virtual Machine Platform", got.DisplayName)
	assert.Equal(t, info.RestartRequired, got.RestartRequired)
	assert.Empty(t, got.CustomProperties, "No custom properties must decode to an empty collection")
}

func TestDecodeImages(t *testing.T) {
	t.Parallel()

	languages := []native.DismString{
		{Value: utf16Ptr(t, "en-US")},
		{Value: utf16Ptr(t, "es-ES")},
	}

	source := []native.DismImageInfo{{
		ImageType:            0, // wim
		ImageIndex:           1,
		ImageName:            utf16Ptr(t, "Windows 11 Pro"),
		ImageDescription:     utf16Ptr(t, "Windows 11 Pro"),
		ImageSize:            16_000_000_000,
		Architecture:         9, // amd64
		ProductName:          utf16Ptr(t, "Microsoft® Windows® Operating System"),
		EditionID:            utf16Ptr(t, "Professional"),
		InstallationType:     utf16Ptr(t, "Client"),
		ProductType:          utf16Ptr(t, "WinNT"),
		MajorVersion:         10,
		Build:                22621,
		Bootable:             2, // unknown
		SystemRoot:           utf16Ptr(t, "WINDOWS"),
		Language:             &languages[0],
		LanguageCount:        uint32(len(languages)),
		DefaultLanguageIndex: 1,
	}}

	got := native.Images(unsafe.Pointer(&source[0]), 1)

	require.Len(t, got, 1)
	assert.Equal(t, info.ImageTypeWim, got[0].ImageType)
	assert.Equal(t, "Windows 11 Pro", got[0].ImageName)
	assert.Equal(t, uint64(16_000_000_000), got[0].ImageSize)
	assert.Equal(t, []string{"en-US", "es-ES"}, got[0].Languages, "Embedded language array must decode in order")
	assert.Equal(t, "es-ES", got[0].DefaultLanguage, "Default language must follow DefaultLanguageIndex")
	assert.Equal(t, info.BootableUnknown, got[0].Bootable)
}

func TestDecodeDrivers(t *testing.T) {
	t.Parallel()

	date := native.SystemTime{Year: 2021, Month: 6, Day: 21}
	packages := []native.DismDriverPackage{{
		PublishedName:    utf16Ptr(t, "oem1.inf"),
		OriginalFileName: utf16Ptr(t, `C:\drivers\net\e1000.inf`),
		InBox:            0,
		ClassName:        utf16Ptr(t, "Net"),
		ClassGUID:        utf16Ptr(t, "{4D36E972-E325-11CE-BFC1-08002BE10318}"),
		BootCritical:     0,
		DriverSignature:  2, // signed
		ProviderName:     utf16Ptr(t, "Intel"),
		Date:             date,
		MajorVersion:     12,
		MinorVersion:     18,
		Build:            9,
		Revision:         1,
	}}

	gotPackages := native.DriverPackages(unsafe.Pointer(&packages[0]), 1)

	require.Len(t, gotPackages, 1)
	assert.Equal(t, "oem1.inf", gotPackages[0].PublishedName)
	assert.False(t, gotPackages[0].InBox, "BOOL 0 must decode to false")
	assert.Equal(t, info.SignatureSigned, gotPackages[0].DriverSignature)
	assert.True(t, gotPackages[0].Date.Equal(date.Time()))

	drivers := []native.DismDriver{{
		ManufacturerName:    utf16Ptr(t, "Intel"),
		HardwareDescription: utf16Ptr(t, "Intel(R) PRO/1000 MT Network Connection"),
		HardwareID:          utf16Ptr(t, `PCI\VEN_8086&DEV_100F`),
		Architecture:        9,
		ServiceName:         utf16Ptr(t, "E1G60"),
	}}

	gotDrivers := native.Drivers(unsafe.Pointer(&drivers[0]), 1)

	require.Len(t, gotDrivers, 1)
	assert.Equal(t, `PCI\VEN_8086&DEV_100F`, gotDrivers[0].HardwareID)
	assert.Equal(t, uint32(9), gotDrivers[0].Architecture)
	assert.Empty(t, gotDrivers[0].CompatibleIDs)
}
