//go:build !linux && !windows && !darwin

package gpu

import (
	"context"
)

// detectVendor has no inventory tool to consult on this platform.
func detectVendor(ctx context.Context) Info {
	return Info{Vendor: VendorUnknown}
}
