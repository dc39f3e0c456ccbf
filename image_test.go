package godism_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dism "github.com/ubuntu/godism"
)

func TestMountAndUnmountImage(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const (
		imageFile = `C:\images\install.wim`
		mountPath = `C:\mnt\win`
	)

	err := dism.MountImage(ctx, imageFile, mountPath)
	require.NoError(t, err, "Mounting the image should succeed")

	mounted, err := dism.MountedImages(ctx)
	require.NoError(t, err, "Listing the mounted images should succeed")
	require.Len(t, mounted, 1, "There should be exactly one mounted image")

	assert.Equal(t, mountPath, mounted[0].MountPath)
	assert.Equal(t, imageFile, mounted[0].ImageFilePath)
	assert.Equal(t, uint32(1), mounted[0].ImageIndex, "The first image should be mounted by default")
	assert.Equal(t, dism.MountReadWrite, mounted[0].MountMode, "Mounts should be writable by default")
	assert.Equal(t, dism.MountStatusOK, mounted[0].MountStatus)

	err = dism.MountImage(ctx, imageFile, mountPath)
	require.Error(t, err, "Mounting onto a busy mount path should fail")

	err = dism.UnmountImage(ctx, mountPath)
	require.NoError(t, err, "Unmounting the image should succeed")

	mounted, err = dism.MountedImages(ctx)
	require.NoError(t, err, "Listing the mounted images should succeed")
	require.Empty(t, mounted, "There should be no mounted images left")

	err = dism.UnmountImage(ctx, mountPath)
	require.Error(t, err, "Unmounting a path with no mounted image should fail")
	require.ErrorIs(t, err, &dism.NativeError{Code: 0xC0040007}, "The failure should carry DISMAPI_E_UNABLE_TO_UNMOUNT_IMAGE_PATH")
}

func TestMountImageSelector(t *testing.T) {
	t.Parallel()

	// The mock derives image names from the file name: index 1 is "install",
	// index 2 is "install Pro".
	tests := map[string]struct {
		opts []dism.Option

		wantIndex uint32
		wantErr   bool
	}{
		"Default selects the first image":  {wantIndex: 1},
		"WithIndex selects by index":       {opts: []dism.Option{dism.WithIndex(2)}, wantIndex: 2},
		"WithName selects by name":         {opts: []dism.Option{dism.WithName("install Pro")}, wantIndex: 2},
		"Error with an out-of-range index": {opts: []dism.Option{dism.WithIndex(7)}, wantErr: true},
		"Error with an unknown name":       {opts: []dism.Option{dism.WithName("Datacenter")}, wantErr: true},
		"Error when combining both":        {opts: []dism.Option{dism.WithIndex(2), dism.WithName("install Pro")}, wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, _ := setup(t)
			const mountPath = `C:\mnt\selector`

			err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath, tc.opts...)
			if tc.wantErr {
				require.Error(t, err, "Mounting should fail")
				return
			}
			require.NoError(t, err, "Mounting should succeed")

			mounted, err := dism.MountedImages(ctx)
			require.NoError(t, err, "Listing the mounted images should succeed")
			require.Len(t, mounted, 1, "There should be exactly one mounted image")
			assert.Equal(t, tc.wantIndex, mounted[0].ImageIndex, "Mismatched image index")
		})
	}
}

func TestReadOnlyMount(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\readonly`

	err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath, dism.ReadOnly())
	require.NoError(t, err, "Mounting read-only should succeed")

	mounted, err := dism.MountedImages(ctx)
	require.NoError(t, err, "Listing the mounted images should succeed")
	require.Len(t, mounted, 1, "There should be exactly one mounted image")
	require.Equal(t, dism.MountReadOnly, mounted[0].MountMode, "The mount should be read-only")

	s, err := dism.OpenOfflineSession(ctx, mountPath)
	require.NoError(t, err, "Setup: could not open a session on the mount")

	err = s.Commit()
	require.Error(t, err, "Committing a read-only mount should fail")

	require.NoError(t, s.Close(), "Could not close the session")

	err = dism.UnmountImage(ctx, mountPath)
	require.Error(t, err, "Unmounting with commit should fail on a read-only mount")

	err = dism.UnmountImage(ctx, mountPath, dism.Discard())
	require.NoError(t, err, "Unmounting with discard should succeed on a read-only mount")
}

func TestUnmountOptionConflicts(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	err := dism.UnmountImage(ctx, `C:\mnt\whatever`, dism.Discard(), dism.WithGenerateIntegrity())
	require.Error(t, err, "Discard combined with commit options should be rejected")
}

func TestCommit(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\commit`

	err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	offline, err := dism.OpenOfflineSession(ctx, mountPath)
	require.NoError(t, err, "Setup: could not open a session on the mount")
	defer offline.Close()

	err = offline.Commit(dism.WithGenerateIntegrity())
	require.NoError(t, err, "Committing a writable mount should succeed")

	online, err := dism.OpenOnlineSession(ctx)
	require.NoError(t, err, "Setup: could not open a session on the online image")
	defer online.Close()

	err = online.Commit()
	require.Error(t, err, "Committing the online image should fail")
}

func TestUnmountWithOpenSessions(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\busy`

	err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	s, err := dism.OpenOfflineSession(ctx, mountPath)
	require.NoError(t, err, "Setup: could not open a session on the mount")

	err = dism.UnmountImage(ctx, mountPath)
	require.Error(t, err, "Unmounting an image with open sessions should fail")
	require.ErrorIs(t, err, &dism.NativeError{Code: 0xC004000A}, "The failure should carry DISMAPI_E_OPEN_HANDLES_UNABLE_TO_UNMOUNT_IMAGE_PATH")

	require.NoError(t, s.Close(), "Could not close the session")

	err = dism.UnmountImage(ctx, mountPath)
	require.NoError(t, err, "Unmounting should succeed once the session is closed")
}

func TestRemountImage(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\remount`

	err := dism.RemountImage(ctx, mountPath)
	require.Error(t, err, "Remounting a path with no mounted image should fail")

	err = dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	err = dism.RemountImage(ctx, mountPath)
	require.NoError(t, err, "Remounting a mounted image should succeed")
}

func TestCleanupMountpoints(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	const mountPath = `C:\mnt\cleanup`

	err := dism.MountImage(ctx, `C:\images\install.wim`, mountPath)
	require.NoError(t, err, "Setup: could not mount the image")

	err = dism.CleanupMountpoints(ctx)
	require.NoError(t, err, "Cleaning up the mount points should succeed")

	mounted, err := dism.MountedImages(ctx)
	require.NoError(t, err, "Listing the mounted images should succeed")
	require.Len(t, mounted, 1, "A healthy mount should survive the cleanup")
}

func TestImageInfo(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	images, err := dism.ImageInfo(ctx, `C:\images\install.wim`)
	require.NoError(t, err, "Reading the image file contents should succeed")
	require.Len(t, images, 2, "The mock image file should contain two images")

	assert.Equal(t, uint32(1), images[0].ImageIndex)
	assert.Equal(t, "install", images[0].ImageName)
	assert.Equal(t, dism.ImageTypeWim, images[0].ImageType)
	assert.Equal(t, "en-US", images[0].DefaultLanguage)

	assert.Equal(t, uint32(2), images[1].ImageIndex)
	assert.Equal(t, "install Pro", images[1].ImageName)
	assert.Equal(t, "Professional", images[1].EditionID)
	assert.Contains(t, images[1].Languages, "es-ES")
}

func TestImageErrorInjection(t *testing.T) {
	t.Parallel()

	ctx, m := setup(t)

	m.MountImageError = true
	err := dism.MountImage(ctx, `C:\images\install.wim`, `C:\mnt\injected`)
	require.Error(t, err, "Mounting should fail when the mock injects an error")

	m.ResetErrors()
	err = dism.MountImage(ctx, `C:\images\install.wim`, `C:\mnt\injected`)
	require.NoError(t, err, "Mounting should succeed after clearing the injected error")

	m.MountedImagesError = true
	_, err = dism.MountedImages(ctx)
	require.Error(t, err, "Listing should fail when the mock injects an error")
}

func TestProgressReporting(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	var reports []dism.Progress
	err := dism.MountImage(ctx, `C:\images\install.wim`, `C:\mnt\progress`, dism.WithProgress(func(p dism.Progress) bool {
		reports = append(reports, p)
		return false
	}))
	require.NoError(t, err, "Mounting with a progress handler should succeed")

	require.NotEmpty(t, reports, "The handler should have received progress reports")
	assert.Equal(t, uint32(0), reports[0].Current, "The first report should be at zero")

	last := reports[len(reports)-1]
	assert.Equal(t, last.Total, last.Current, "The last report should be at completion")

	for i, p := range reports {
		require.LessOrEqual(t, p.Current, p.Total, fmt.Sprintf("Report #%d overshoots its total", i))
	}
}

func TestCancellation(t *testing.T) {
	t.Parallel()

	ctx, _ := setup(t)

	var calls int
	err := dism.MountImage(ctx, `C:\images\install.wim`, `C:\mnt\cancelled`, dism.WithProgress(func(p dism.Progress) bool {
		calls++
		return true
	}))
	require.Error(t, err, "A cancelled mount should fail")
	require.ErrorIs(t, err, dism.ErrCancelled, "The failure should be ErrCancelled")
	require.NotZero(t, calls, "The handler should have been consulted")

	mounted, err := dism.MountedImages(ctx)
	require.NoError(t, err, "Listing the mounted images should succeed")
	require.Empty(t, mounted, "A cancelled mount should leave nothing behind")
}
