//go:build windows

package gpu

import (
	"context"
	"os/exec"
)

// detectVendor finds the primary GPU via wmic.
func detectVendor(ctx context.Context) Info {
	out, err := exec.CommandContext(ctx, "wmic", "path", "win32_videocontroller", "get", "name").Output()
	if err != nil {
		return Info{Vendor: VendorUnknown}
	}
	return parseWmic(string(out))
}
