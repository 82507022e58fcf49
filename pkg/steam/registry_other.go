//go:build !windows

package steam

func registryRoot() (string, bool) { return "", false }
