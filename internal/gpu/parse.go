package gpu

import (
	"strings"
)

// parseCUDAVersion extracts the CUDA version (e.g., "12.4") from the
// nvidia-smi banner line.
func parseCUDAVersion(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "CUDA Version:") {
			continue
		}
		rest := strings.SplitN(line, "CUDA Version:", 2)[1]
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			return strings.TrimRight(fields[0], "|")
		}
	}
	return ""
}

// classifyName maps an adapter or controller description to a vendor.
// PCI vendor IDs are accepted alongside marketing names since lspci -vnn
// prints both.
func classifyName(name string) Vendor {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "nvidia"), strings.Contains(n, "geforce"), strings.Contains(n, "10de"):
		return VendorNvidia
	case strings.Contains(n, "amd"), strings.Contains(n, "radeon"), strings.Contains(n, "1002"):
		return VendorAMD
	case strings.Contains(n, "intel"), strings.Contains(n, "8086"):
		return VendorIntel
	case strings.TrimSpace(n) == "":
		return VendorUnknown
	default:
		return VendorOther
	}
}

// parseLspci finds the primary display controller in `lspci -vnn` output.
// A recognized vendor wins immediately; otherwise scanning continues in
// case a more specific entry follows.
func parseLspci(out string) Info {
	info := Info{Vendor: VendorUnknown}
	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "vga compatible controller") && !strings.Contains(lower, "3d controller") {
			continue
		}
		vendor := classifyName(lower)
		if vendor == VendorNvidia || vendor == VendorAMD || vendor == VendorIntel {
			return Info{Vendor: vendor, Name: strings.TrimSpace(line)}
		}
		info = Info{Vendor: VendorOther, Name: strings.TrimSpace(line)}
	}
	return info
}

// parseWmic classifies the adapter names from
// `wmic path win32_videocontroller get name` output. The first line is the
// column header.
func parseWmic(out string) Info {
	info := Info{Vendor: VendorUnknown}
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.EqualFold(name, "Name") {
			continue
		}
		vendor := classifyName(name)
		if vendor == VendorNvidia || vendor == VendorAMD || vendor == VendorIntel {
			return Info{Vendor: vendor, Name: name}
		}
		info = Info{Vendor: VendorOther, Name: name}
	}
	return info
}

// parseSystemProfiler classifies the chipset model lines from
// `system_profiler SPDisplaysDataType` output.
func parseSystemProfiler(out string) Info {
	info := Info{Vendor: VendorUnknown}
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if !strings.HasPrefix(lower, "chipset model:") {
			continue
		}
		model := strings.TrimSpace(trimmed[len("Chipset Model:"):])
		vendor := classifyName(model)
		if vendor == VendorNvidia || vendor == VendorAMD || vendor == VendorIntel {
			return Info{Vendor: vendor, Name: model}
		}
		info = Info{Vendor: VendorOther, Name: model}
	}
	return info
}
