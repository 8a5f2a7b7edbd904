// Package gpu detects the primary graphics adapter and, for NVIDIA
// hardware, the CUDA driver version. Detection shells out to the platform
// inventory tool (lspci, wmic, system_profiler) and to nvidia-smi; it never
// loads driver libraries itself.
package gpu

import (
	"context"
	"errors"
	"os/exec"
)

// Vendor identifies the GPU manufacturer.
type Vendor string

const (
	VendorNvidia  Vendor = "nvidia"
	VendorAMD     Vendor = "amd"
	VendorIntel   Vendor = "intel"
	VendorOther   Vendor = "other"
	VendorUnknown Vendor = "unknown"
)

// Info describes the primary GPU found on this machine.
type Info struct {
	Vendor      Vendor `json:"vendor" yaml:"vendor"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	CUDAVersion string `json:"cuda_version,omitempty" yaml:"cuda_version,omitempty"`
}

// Detect inspects the system for the primary GPU. Detection failures are
// not errors: the tool may simply be absent, in which case the vendor is
// reported as unknown.
func Detect(ctx context.Context) Info {
	info := detectVendor(ctx)
	if info.Vendor == VendorNvidia && info.CUDAVersion == "" {
		if version, err := cudaVersion(ctx); err == nil {
			info.CUDAVersion = version
		}
	}
	return info
}

// cudaVersion runs nvidia-smi and extracts the CUDA version from its
// banner.
func cudaVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "nvidia-smi").Output()
	if err != nil {
		return "", err
	}
	version := parseCUDAVersion(string(out))
	if version == "" {
		return "", errors.New("CUDA version not found in nvidia-smi output")
	}
	return version, nil
}
