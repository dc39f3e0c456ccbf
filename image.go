package godism

// This file contains the image file lifecycle: mounting, committing and
// querying .wim and .vhd files.

import (
	"context"
	"errors"

	"github.com/ubuntu/decorate"
	"github.com/ubuntu/godism/internal/flags"
)

// MountImage mounts one image contained in the file at imageFilePath onto
// the directory at mountPath. The first image is mounted unless WithIndex or
// WithName selects another one.
//
// Honoured options: WithIndex, WithName, ReadOnly, WithOptimize,
// WithCheckIntegrity, WithProgress.
func MountImage(ctx context.Context, imageFilePath, mountPath string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not mount %q at %q", imageFilePath, mountPath)

	var options options
	for _, o := range opts {
		o(&options)
	}

	identifier := flags.ImageIndex
	if options.imageName != "" {
		if options.imageIndex != 0 {
			return errors.New("WithIndex and WithName cannot be combined")
		}
		identifier = flags.ImageName
	} else if options.imageIndex == 0 {
		options.imageIndex = 1
	}

	mountFlags := flags.UnpackedMount{
		ReadOnly:       options.readOnly,
		Optimize:       options.optimize,
		CheckIntegrity: options.checkIntegrity,
	}.Pack()

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return selectBackend(ctx).MountImage(imageFilePath, mountPath, options.imageIndex, options.imageName, identifier, mountFlags, bridge)
}

// UnmountImage unmounts the image mounted at mountPath, committing its
// changes to the image file unless Discard throws them away.
//
// Honoured options: Discard, WithGenerateIntegrity, WithAppend, WithProgress.
func UnmountImage(ctx context.Context, mountPath string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not unmount %q", mountPath)

	var options options
	for _, o := range opts {
		o(&options)
	}

	if options.discard && (options.generateIntegrity || options.appendCommit) {
		return errors.New("Discard cannot be combined with commit options")
	}

	commitFlags := flags.UnpackedCommit{
		Discard:           options.discard,
		GenerateIntegrity: options.generateIntegrity,
		Append:            options.appendCommit,
	}.Pack()

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return selectBackend(ctx).UnmountImage(mountPath, commitFlags, bridge)
}

// RemountImage reactivates a mount point that survived a reboot, so that its
// image can be serviced or unmounted again.
func RemountImage(ctx context.Context, mountPath string) (err error) {
	defer decorate.OnError(&err, "could not remount %q", mountPath)

	return selectBackend(ctx).RemountImage(mountPath)
}

// Commit writes the changes of the mounted image this session services back
// to its image file, without unmounting it. The online image cannot be
// committed.
//
// Honoured options: WithGenerateIntegrity, WithAppend, WithProgress.
func (s *Session) Commit(opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not commit %s", s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	commitFlags := flags.UnpackedCommit{
		GenerateIntegrity: options.generateIntegrity,
		Append:            options.appendCommit,
	}.Pack()

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.CommitImage(s.handle, commitFlags, bridge)
}

// MountedImages lists the mount points known to the engine, machine-wide.
func MountedImages(ctx context.Context) (images []MountedImage, err error) {
	defer decorate.OnError(&err, "could not list the mounted images")

	return selectBackend(ctx).MountedImages()
}

// ImageInfo lists the images contained in the file at imageFilePath.
func ImageInfo(ctx context.Context, imageFilePath string) (images []Image, err error) {
	defer decorate.OnError(&err, "could not read the contents of %q", imageFilePath)

	return selectBackend(ctx).ImageInfo(imageFilePath)
}

// CleanupMountpoints removes the stale mount points left behind by mounts
// that can no longer be serviced, such as after an unclean shutdown.
func CleanupMountpoints(ctx context.Context) (err error) {
	defer decorate.OnError(&err, "could not clean up the mount points")

	return selectBackend(ctx).CleanupMountpoints()
}
