// Package godism implements an idiomatic interface to service Windows images
// from Go. It wraps the dismapi.dll native library: mounting and unmounting
// image files, and enabling features, adding packages and drivers, and
// repairing either the running installation or a mounted image.
//
// This package also contains a mock DISM backend which can be useful for
// testing, as every operation would otherwise need an elevated process and a
// real image to service. This mock back-end is disabled by default, and can
// be enabled by using the context returned by the WithMock function.
package godism
