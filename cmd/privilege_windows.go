//go:build windows

package cmd

import "golang.org/x/sys/windows"

// processIsElevated reports whether the process token carries elevation.
func processIsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
