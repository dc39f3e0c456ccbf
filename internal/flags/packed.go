package flags

// UnpackedMount contains the same information as MountFlags but in a struct
// instead of an integer.
type UnpackedMount struct {
	ReadOnly       bool // Whether the mounted image rejects changes
	Optimize       bool // Whether to defer loading some metadata until needed
	CheckIntegrity bool // Whether to verify the image for corruption (WIM only)
}

// UnpackMount examines a MountFlags object and stores its data in an
// UnpackedMount flags struct.
func UnpackMount(f MountFlags) UnpackedMount {
	var up UnpackedMount

	up.ReadOnly = false
	if f&flag_MOUNT_READONLY != 0 {
		up.ReadOnly = true
	}

	up.Optimize = false
	if f&flag_MOUNT_OPTIMIZE != 0 {
		up.Optimize = true
	}

	up.CheckIntegrity = false
	if f&flag_MOUNT_CHECK_INTEGRITY != 0 {
		up.CheckIntegrity = true
	}

	return up
}

// Pack generates a MountFlags object from the UnpackedMount struct.
func (up UnpackedMount) Pack() MountFlags {
	f := flag_MOUNT_READWRITE

	if up.ReadOnly {
		f = f | flag_MOUNT_READONLY
	}

	if up.Optimize {
		f = f | flag_MOUNT_OPTIMIZE
	}

	if up.CheckIntegrity {
		f = f | flag_MOUNT_CHECK_INTEGRITY
	}

	return f
}

// UnpackedCommit contains the same information as CommitFlags but in a struct
// instead of an integer.
type UnpackedCommit struct {
	Discard           bool // Whether pending changes are thrown away instead of written
	GenerateIntegrity bool // Whether to generate integrity data while committing
	Append            bool // Whether to append the image instead of overwriting it
}

// UnpackCommit examines a CommitFlags object and stores its data in an
// UnpackedCommit flags struct.
func UnpackCommit(f CommitFlags) UnpackedCommit {
	var up UnpackedCommit

	up.Discard = false
	if f&flag_DISCARD_IMAGE != 0 {
		up.Discard = true
	}

	up.GenerateIntegrity = false
	if f&flag_COMMIT_GENERATE_INTEGRITY != 0 {
		up.GenerateIntegrity = true
	}

	up.Append = false
	if f&flag_COMMIT_APPEND != 0 {
		up.Append = true
	}

	return up
}

// Pack generates a CommitFlags object from the UnpackedCommit struct.
func (up UnpackedCommit) Pack() CommitFlags {
	f := flag_COMMIT_IMAGE

	if up.Discard {
		f = f | flag_DISCARD_IMAGE
	}

	if up.GenerateIntegrity {
		f = f | flag_COMMIT_GENERATE_INTEGRITY
	}

	if up.Append {
		f = f | flag_COMMIT_APPEND
	}

	return f
}
