//go:build !windows

package cmd

import "os"

// processIsElevated reports whether the process has root privileges.
func processIsElevated() bool {
	return os.Geteuid() == 0
}
