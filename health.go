package godism

// This file contains the component store health operations.

import (
	"github.com/ubuntu/decorate"
)

// CheckHealth reports the corruption state of the session's image. By
// default only the result recorded by previous operations is read; WithScan
// performs a full scan instead.
//
// Honoured options: WithScan, WithProgress.
func (s *Session) CheckHealth(opts ...Option) (health Health, err error) {
	defer decorate.OnError(&err, "could not check the health of %s", s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return health, err
	}
	defer bridge.Close()

	return s.backend.CheckImageHealth(s.handle, options.scan, bridge)
}

// RestoreHealth repairs the corruption of the session's image. Repair files
// come from the image itself, from the locations given with WithSources, or
// from Windows Update unless LimitAccess forbids it.
//
// Honoured options: WithSources, LimitAccess, WithProgress.
func (s *Session) RestoreHealth(opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not restore the health of %s", s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.RestoreImageHealth(s.handle, options.sourcePaths, options.limitAccess, bridge)
}
