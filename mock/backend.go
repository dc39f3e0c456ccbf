// Package mock mocks the DISM api, useful for tests as it allows parallelism,
// decoupling, and execution speed.
package mock

import (
	"sync"

	"github.com/ubuntu/godism/internal/backend"
	"github.com/ubuntu/godism/internal/info"
	"github.com/ubuntu/godism/internal/state"
)

// Backend implements the Backend interface.
type Backend struct {
	mu sync.Mutex

	initialized bool
	nextSession backend.Session
	sessions    map[backend.Session]*target
	mounts      map[string]*mount
	online      *target
	images      map[string][]info.Image

	// Error injectors. These all have the form of:
	//
	// NameOfTheFunctionError
	//
	// Their effect is to make the relevant function return an error of type mock.Error
	// instantly upon being called.
	InitializeError         bool
	ShutdownError           bool
	OpenSessionError        bool
	CloseSessionError       bool
	MountImageError         bool
	UnmountImageError       bool
	RemountImageError       bool
	CommitImageError        bool
	MountedImagesError      bool
	ImageInfoError          bool
	CleanupMountpointsError bool
	AddDriverError          bool
	RemoveDriverError       bool
	DriversError            bool
	DriverInfoError         bool
	EnableFeatureError      bool
	DisableFeatureError     bool
	FeaturesError           bool
	FeatureInfoError        bool
	FeatureParentsError     bool
	AddPackageError         bool
	RemovePackageError      bool
	PackagesError           bool
	PackageInfoError        bool
	CheckImageHealthError   bool
	RestoreImageHealthError bool

	// Reboot injectors. These make the relevant servicing function apply its
	// change and then report it as pending a reboot.
	EnableFeatureRebootRequired  bool
	DisableFeatureRebootRequired bool
	AddPackageRebootRequired     bool
	RemovePackageRebootRequired  bool
}

// New constructs a new mocked back-end for DISM.
func New() *Backend {
	return &Backend{
		nextSession: 1,
		sessions:    map[backend.Session]*target{},
		mounts:      map[string]*mount{},
		online:      newTarget(),
		images:      map[string][]info.Image{},
	}
}

// ResetErrors sets all the error flags to false.
func (b *Backend) ResetErrors() {
	b.InitializeError = false
	b.ShutdownError = false
	b.OpenSessionError = false
	b.CloseSessionError = false
	b.MountImageError = false
	b.UnmountImageError = false
	b.RemountImageError = false
	b.CommitImageError = false
	b.MountedImagesError = false
	b.ImageInfoError = false
	b.CleanupMountpointsError = false
	b.AddDriverError = false
	b.RemoveDriverError = false
	b.DriversError = false
	b.DriverInfoError = false
	b.EnableFeatureError = false
	b.DisableFeatureError = false
	b.FeaturesError = false
	b.FeatureInfoError = false
	b.FeatureParentsError = false
	b.AddPackageError = false
	b.RemovePackageError = false
	b.PackagesError = false
	b.PackageInfoError = false
	b.CheckImageHealthError = false
	b.RestoreImageHealthError = false

	b.EnableFeatureRebootRequired = false
	b.DisableFeatureRebootRequired = false
	b.AddPackageRebootRequired = false
	b.RemovePackageRebootRequired = false
}

// SetOnlineHealth overrides the health that CheckImageHealth reports for the
// online image, so that repair paths can be exercised.
func (b *Backend) SetOnlineHealth(h state.Health) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.online.health = h
}

// Error is an error triggered by the mock, and not a real problem.
type Error struct{}

func (err Error) Error() string {
	return "error triggered by mock"
}

// mount is one entry of the mock's mounted image table.
type mount struct {
	guid   string
	info   info.MountedImage
	target *target
}

// target is the servicing state behind a session: the online installation or
// one mounted image.
type target struct {
	features map[string]*featureEntry
	packages map[string]*packageEntry
	drivers  []info.DriverPackage
	oemCount int
	health   state.Health
}

type featureEntry struct {
	state       info.FeatureState
	displayName string
	description string
	parent      string
}

type packageEntry struct {
	state       info.FeatureState
	releaseType info.ReleaseType
	displayName string
}

// newTarget builds the servicing state every fresh image starts from.
func newTarget() *target {
	return &target{
		features: map[string]*featureEntry{
			"SMB1Protocol": {
				state:       info.StateStaged,
				displayName: "SMB 1.0/CIFS File Sharing Support",
			},
			"SMB1Protocol-Client": {
				state:       info.StateStaged,
				displayName: "SMB 1.0/CIFS Client",
				parent:      "SMB1Protocol",
			},
			"TelnetClient": {
				state:       info.StateStaged,
				displayName: "Telnet Client",
			},
			"NetFx3": {
				state:       info.StateRemoved,
				displayName: ".NET Framework 3.5 (includes .NET 2.0 and 3.0)",
				description: "Required by some older applications.",
			},
		},
		packages: map[string]*packageEntry{
			"Microsoft-Windows-Foundation-Package~31bf3856ad364e35~amd64~~10.0.22621.1": {
				state:       info.StateInstalled,
				releaseType: info.ReleaseFoundation,
				displayName: "Windows Foundation",
			},
		},
		drivers: []info.DriverPackage{
			{
				PublishedName:    "usbstor.inf",
				OriginalFileName: "usbstor.inf",
				InBox:            true,
				ClassName:        "USB",
				ClassDescription: "USB mass storage devices",
				DriverSignature:  info.SignatureSigned,
				ProviderName:     "Microsoft",
			},
		},
		health: state.Healthy,
	}
}
