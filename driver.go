package godism

// This file contains the driver package operations. Drivers can only be
// serviced in offline images.

import (
	"github.com/ubuntu/decorate"
)

// AddDriver installs the .inf driver package at driverPath into the
// session's image. The image gives it a sequential oemN.inf published name.
//
// Honoured options: ForceUnsigned.
func (s *Session) AddDriver(driverPath string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not add driver %q to %s", driverPath, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	return s.backend.AddDriver(s.handle, driverPath, options.forceUnsigned)
}

// RemoveDriver removes an out-of-box driver package from the session's
// image, identified by its oemN.inf published name.
func (s *Session) RemoveDriver(driverPath string) (err error) {
	defer decorate.OnError(&err, "could not remove driver %q from %s", driverPath, s)

	return s.backend.RemoveDriver(s.handle, driverPath)
}

// Drivers lists the out-of-box driver packages of the session's image.
//
// Honoured options: AllDrivers.
func (s *Session) Drivers(opts ...Option) (drivers []DriverPackage, err error) {
	defer decorate.OnError(&err, "could not list the drivers of %s", s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	return s.backend.Drivers(s.handle, options.allDrivers)
}

// DriverInfo lists the hardware bindings of a driver package of the
// session's image.
func (s *Session) DriverInfo(driverPath string) (drivers []Driver, err error) {
	defer decorate.OnError(&err, "could not describe driver %q in %s", driverPath, s)

	return s.backend.DriverInfo(s.handle, driverPath)
}
