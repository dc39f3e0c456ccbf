package windows

import (
	"github.com/ubuntu/decorate"
	"golang.org/x/sys/windows/registry"
)

// Path to the Windows Kits registry key. Machine-wide kit installs register
// their roots under this path.
const installedRootsPath = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`

// kitsRootPath reads the Windows Kits 10 installation root from the registry.
// It is the fallback location for dismapi.dll on hosts where the system copy
// is not on the DLL search path.
func kitsRootPath() (root string, err error) {
	defer decorate.OnError(&err, "registry: could not read KitsRoot10 under HKEY_LOCAL_MACHINE\\%s", installedRootsPath)

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, installedRootsPath, registry.READ)
	if err != nil {
		return "", err
	}
	defer k.Close()

	root, _, err = k.GetStringValue("KitsRoot10")
	if err != nil {
		return "", err
	}
	return root, nil
}
