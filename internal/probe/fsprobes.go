package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/0shamedia/metamorphosis-doctor/internal/sysinfo"
)

// DirExists probes that a directory is present.
func DirExists(name, path string) Probe {
	return Func(name, func(ctx context.Context) Result {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			msg := fmt.Sprintf("directory not found or is not a directory: %s", path)
			return Result{Status: StatusFail, Summary: msg, Err: msg}
		}
		return Result{Status: StatusPass, Summary: fmt.Sprintf("directory exists at %s", path)}
	})
}

// FileExists probes that a regular file is present.
func FileExists(name, path string) Probe {
	return Func(name, func(ctx context.Context) Result {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			msg := fmt.Sprintf("file not found or is not a file: %s", path)
			return Result{Status: StatusFail, Summary: msg, Err: msg}
		}
		return Result{Status: StatusPass, Summary: fmt.Sprintf("file exists at %s", path)}
	})
}

// MinFreeDisk probes that the volume containing path has at least minBytes
// available.
func MinFreeDisk(name, path string, minBytes uint64) Probe {
	return Func(name, func(ctx context.Context) Result {
		free, err := sysinfo.FreeDiskSpace(path)
		if err != nil {
			return Result{Status: StatusFail, Summary: "could not check free disk space", Err: err.Error()}
		}
		if free < minBytes {
			msg := fmt.Sprintf("insufficient disk space: required %s, available %s",
				sysinfo.FormatGB(minBytes), sysinfo.FormatGB(free))
			return Result{Status: StatusFail, Summary: msg, Err: msg}
		}
		return Result{
			Status:  StatusPass,
			Summary: fmt.Sprintf("%s available at %s", sysinfo.FormatGB(free), path),
		}
	})
}
