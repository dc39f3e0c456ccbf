package godism

import (
	"github.com/ubuntu/godism/internal/dismerror"
)

// ErrRebootRequired reports that an operation succeeded but Windows must be
// rebooted before the change takes full effect. The change is applied either
// way, so callers that tolerate the reboot should treat it as success:
//
//	if err := s.EnableFeature("NetFx3"); err != nil && !errors.Is(err, godism.ErrRebootRequired) {
//		return err
//	}
var ErrRebootRequired = dismerror.ErrRebootRequired

// ErrCancelled reports that an operation was aborted because the caller's
// progress handler requested cancellation.
var ErrCancelled = dismerror.ErrCancelled

// NativeError is a failure reported by the native library. It carries the raw
// status code and, when available, the diagnostic text recorded for the
// failing call. Match a specific code with errors.Is:
//
//	errors.Is(err, &godism.NativeError{Code: 0xC0040004})
type NativeError = dismerror.NativeError
