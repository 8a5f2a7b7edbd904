//go:build !windows

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// freeDiskSpace returns the free disk space in bytes for the given path on
// Unix systems.
func freeDiskSpace(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}

	// Available blocks * block size = available bytes.
	// Use Bavail (available to non-root users) rather than Bfree (total free).
	return stat.Bavail * uint64(stat.Bsize), nil
}
