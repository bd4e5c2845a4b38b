//go:build !wasip1

package abi

// Native returns the host of the running process. Outside a wasip1 build there
// is no sandbox to call into.
func Native() Host {
	return NoSys{}
}
