//go:build linux

package gpu

import (
	"context"
	"os/exec"
)

// detectVendor finds the primary GPU via lspci.
func detectVendor(ctx context.Context) Info {
	out, err := exec.CommandContext(ctx, "lspci", "-vnn").Output()
	if err != nil {
		return Info{Vendor: VendorUnknown}
	}
	return parseLspci(string(out))
}
