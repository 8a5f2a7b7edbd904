//go:build darwin

package gpu

import (
	"context"
	"os/exec"
)

// detectVendor finds the primary GPU via system_profiler.
func detectVendor(ctx context.Context) Info {
	out, err := exec.CommandContext(ctx, "system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return Info{Vendor: VendorUnknown}
	}
	return parseSystemProfiler(string(out))
}
