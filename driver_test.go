package godism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dism "github.com/ubuntu/godism"
)

// offlineSession mounts a scratch image and opens a session on it.
func offlineSession(t *testing.T) (*dism.Session, func()) {
	t.Helper()

	ctx, _ := setup(t)
	const mountPath = `C:\mnt\drivers`

	err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	s, err := dism.OpenOfflineSession(ctx, mountPath)
	require.NoError(t, err, "Setup: could not open a session on the mount")

	return s, func() {
		require.NoError(t, s.Close(), "Cleanup: could not close the session")
		require.NoError(t, dism.UnmountImage(ctx, mountPath, dism.Discard()), "Cleanup: could not unmount the image")
	}
}

func TestAddAndRemoveDriver(t *testing.T) {
	t.Parallel()

	s, cleanup := offlineSession(t)
	defer cleanup()

	const inf = `C:\drivers\net\e1000.inf`

	err := s.AddDriver(inf)
	require.NoError(t, err, "Adding a driver should succeed")

	drivers, err := s.Drivers()
	require.NoError(t, err, "Listing the drivers should succeed")
	require.Len(t, drivers, 1, "The out-of-box driver should be listed")

	assert.Equal(t, "oem1.inf", drivers[0].PublishedName, "The image should assign the first oemN.inf name")
	assert.Equal(t, inf, drivers[0].OriginalFileName)
	assert.Equal(t, dism.SignatureSigned, drivers[0].DriverSignature)

	err = s.RemoveDriver("oem1.inf")
	require.NoError(t, err, "Removing the driver by published name should succeed")

	drivers, err = s.Drivers()
	require.NoError(t, err, "Listing the drivers should succeed")
	require.Empty(t, drivers, "The driver should be gone")

	err = s.RemoveDriver("oem1.inf")
	require.Error(t, err, "Removing an absent driver should fail")
}

func TestDriversIncludesInbox(t *testing.T) {
	t.Parallel()

	s, cleanup := offlineSession(t)
	defer cleanup()

	drivers, err := s.Drivers()
	require.NoError(t, err, "Listing the drivers should succeed")
	require.Empty(t, drivers, "A fresh image should have no out-of-box drivers")

	drivers, err = s.Drivers(dism.AllDrivers())
	require.NoError(t, err, "Listing all drivers should succeed")
	require.NotEmpty(t, drivers, "AllDrivers should include the inbox drivers")
	assert.True(t, drivers[0].InBox)

	err = s.RemoveDriver(drivers[0].PublishedName)
	require.Error(t, err, "Removing an inbox driver should fail")
}

func TestForceUnsignedDriver(t *testing.T) {
	t.Parallel()

	s, cleanup := offlineSession(t)
	defer cleanup()

	err := s.AddDriver(`C:\drivers\homemade\gadget.inf`, dism.ForceUnsigned())
	require.NoError(t, err, "Adding an unsigned driver with ForceUnsigned should succeed")

	drivers, err := s.Drivers()
	require.NoError(t, err, "Listing the drivers should succeed")
	require.Len(t, drivers, 1, "The driver should be listed")
	require.Equal(t, dism.SignatureUnsigned, drivers[0].DriverSignature)
}

func TestDriverInfo(t *testing.T) {
	t.Parallel()

	s, cleanup := offlineSession(t)
	defer cleanup()

	const inf = `C:\drivers\net\e1000.inf`

	err := s.AddDriver(inf)
	require.NoError(t, err, "Setup: could not add the driver")

	bindings, err := s.DriverInfo("oem1.inf")
	require.NoError(t, err, "Describing the driver should succeed")
	require.NotEmpty(t, bindings, "The driver should have hardware bindings")
	assert.NotEmpty(t, bindings[0].HardwareID)

	_, err = s.DriverInfo(`C:\drivers\net\absent.inf`)
	require.Error(t, err, "Describing an absent driver should fail")
}
