package windows

// This file contains mocks for the registry definitions and imports.

import (
	"errors"

	"github.com/ubuntu/decorate"
)

// kitsRootPath reads the Windows Kits 10 installation root from the registry.
// This implementation will always fail on Linux.
func kitsRootPath() (root string, err error) {
	defer decorate.OnError(&err, "registry: could not read KitsRoot10")
	return "", errors.New("not implemented")
}
