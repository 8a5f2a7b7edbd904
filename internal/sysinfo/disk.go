package sysinfo

import (
	"fmt"
	"path/filepath"
)

// BytesPerGB converts the GB figures used in configuration to bytes.
const BytesPerGB = 1024 * 1024 * 1024

// FreeDiskSpace returns the bytes available to the current user on the
// volume containing path. The path does not need to exist yet - the check
// walks up to the nearest existing ancestor, since the install target is
// often created later.
func FreeDiskSpace(path string) (uint64, error) {
	p := filepath.Clean(path)
	for {
		free, err := freeDiskSpace(p)
		if err == nil {
			return free, nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return 0, fmt.Errorf("could not determine free disk space for %s: %w", path, err)
		}
		p = parent
	}
}

// FormatGB renders a byte count as a human-readable GB figure.
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/float64(BytesPerGB))
}
