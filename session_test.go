package godism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dism "github.com/ubuntu/godism"
)

func TestOpenOnlineSession(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	s, err := dism.OpenOnlineSession(ctx)
	require.NoError(t, err, "Opening a session on the online image should succeed")
	defer s.Close()

	assert.Equal(t, "session on the online image", s.String())
}

func TestOpenOfflineSession(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\offline`

	_, err := dism.OpenOfflineSession(ctx, mountPath)
	require.Error(t, err, "Opening a session on a path with no mounted image should fail")

	err = dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	s, err := dism.OpenOfflineSession(ctx, mountPath, dism.WithWindowsDir("Windows"), dism.WithSystemDrive("C:"))
	require.NoError(t, err, "Opening a session on a mounted image should succeed")

	assert.Equal(t, "session on "+mountPath, s.String())

	require.NoError(t, s.Close(), "Could not close the session")
	require.NoError(t, dism.UnmountImage(ctx, mountPath, dism.Discard()), "Cleanup: could not unmount the image")
}

func TestClosedSessionIsRejected(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	s, err := dism.OpenOnlineSession(ctx)
	require.NoError(t, err, "Setup: could not open a session")

	err = s.Close()
	require.NoError(t, err, "Could not close the session")

	err = s.Close()
	require.Error(t, err, "Closing a closed session should fail")
	require.ErrorIs(t, err, &dism.NativeError{Code: 0xC0040004}, "The failure should carry DISMAPI_E_INVALID_DISM_SESSION")

	_, err = s.Features()
	require.ErrorIs(t, err, &dism.NativeError{Code: 0xC0040004}, "Operations on a closed session should fail")
}
