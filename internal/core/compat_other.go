//go:build !windows

package core

import "runtime"

// OSVersionString returns the platform name. Cache paths target Windows,
// but the binary itself cross-compiles for development and testing.
func OSVersionString() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
