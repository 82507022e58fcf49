//go:build windows

package steam

import "golang.org/x/sys/windows/registry"

// registryRoot reads the install path the Steam installer records.
func registryRoot() (string, bool) {
	for _, path := range []string{`SOFTWARE\WOW6432Node\Valve\Steam`, `SOFTWARE\Valve\Steam`} {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		value, _, err := key.GetStringValue("InstallPath")
		key.Close()
		if err == nil && value != "" {
			return value, true
		}
	}
	return "", false
}
