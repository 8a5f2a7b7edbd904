package gpu

import (
	"testing"
)

const nvidiaSmiBanner = `Mon Aug 25 10:14:06 2025
+-----------------------------------------------------------------------------------------+
| NVIDIA-SMI 550.54.14              Driver Version: 550.54.14      CUDA Version: 12.4     |
|-----------------------------------------+------------------------+----------------------+
| GPU  Name                 Persistence-M | Bus-Id          Disp.A | Volatile Uncorr. ECC |
+-----------------------------------------+------------------------+----------------------+
`

func TestParseCUDAVersion(t *testing.T) {
	if got := parseCUDAVersion(nvidiaSmiBanner); got != "12.4" {
		t.Errorf("expected '12.4', got '%s'", got)
	}
}

func TestParseCUDAVersion_NoBanner(t *testing.T) {
	if got := parseCUDAVersion("some unrelated output\n"); got != "" {
		t.Errorf("expected empty string, got '%s'", got)
	}
}

func TestClassifyName(t *testing.T) {
	tests := []struct {
		name     string
		expected Vendor
	}{
		{"NVIDIA GeForce RTX 4090", VendorNvidia},
		{"nvidia corporation ga102 [10de:2204]", VendorNvidia},
		{"AMD Radeon RX 7900 XTX", VendorAMD},
		{"Advanced Micro Devices, Inc. [1002:744c]", VendorAMD},
		{"Intel Corporation UHD Graphics 770", VendorIntel},
		{"Matrox Electronics Systems Ltd. G200", VendorOther},
		{"", VendorUnknown},
	}

	for _, tt := range tests {
		if got := classifyName(tt.name); got != tt.expected {
			t.Errorf("classifyName(%q) = %s, expected %s", tt.name, got, tt.expected)
		}
	}
}

func TestParseLspci_Nvidia(t *testing.T) {
	out := `00:02.0 Host bridge [0600]: Intel Corporation Device [8086:a700]
01:00.0 VGA compatible controller [0300]: NVIDIA Corporation AD102 [GeForce RTX 4090] [10de:2684] (rev a1)
01:00.1 Audio device [0403]: NVIDIA Corporation AD102 High Definition Audio Controller [10de:22ba]
`
	info := parseLspci(out)
	if info.Vendor != VendorNvidia {
		t.Errorf("expected nvidia, got %s", info.Vendor)
	}
	if info.Name == "" {
		t.Error("expected controller line captured as name")
	}
}

func TestParseLspci_3DController(t *testing.T) {
	out := "01:00.0 3D controller [0302]: NVIDIA Corporation GP107M [GeForce GTX 1050 Mobile] [10de:1c8d]\n"
	if info := parseLspci(out); info.Vendor != VendorNvidia {
		t.Errorf("expected nvidia for 3D controller, got %s", info.Vendor)
	}
}

func TestParseLspci_AMD(t *testing.T) {
	out := "03:00.0 VGA compatible controller [0300]: Advanced Micro Devices, Inc. [AMD/ATI] Navi 31 [Radeon RX 7900 XTX] [1002:744c]\n"
	if info := parseLspci(out); info.Vendor != VendorAMD {
		t.Errorf("expected amd, got %s", info.Vendor)
	}
}

func TestParseLspci_NoDisplayController(t *testing.T) {
	out := "00:1f.3 Audio device [0403]: Intel Corporation Device [8086:7a50]\n"
	if info := parseLspci(out); info.Vendor != VendorUnknown {
		t.Errorf("expected unknown when no display controller present, got %s", info.Vendor)
	}
}

func TestParseLspci_KeepsScanningPastOther(t *testing.T) {
	out := `00:01.0 VGA compatible controller [0300]: Matrox Electronics Systems Ltd. G200 [102b:0522]
01:00.0 VGA compatible controller [0300]: NVIDIA Corporation AD102 [10de:2684]
`
	if info := parseLspci(out); info.Vendor != VendorNvidia {
		t.Errorf("expected later nvidia entry to win, got %s", info.Vendor)
	}
}

func TestParseWmic(t *testing.T) {
	out := "Name                        \r\nNVIDIA GeForce RTX 4080     \r\n\r\n"
	info := parseWmic(out)
	if info.Vendor != VendorNvidia {
		t.Errorf("expected nvidia, got %s", info.Vendor)
	}
	if info.Name != "NVIDIA GeForce RTX 4080" {
		t.Errorf("expected trimmed adapter name, got '%s'", info.Name)
	}
}

func TestParseWmic_HeaderOnly(t *testing.T) {
	if info := parseWmic("Name\r\n\r\n"); info.Vendor != VendorUnknown {
		t.Errorf("expected unknown for header-only output, got %s", info.Vendor)
	}
}

func TestParseSystemProfiler(t *testing.T) {
	out := `Graphics/Displays:

    Apple M2 Pro:

      Chipset Model: Apple M2 Pro
      Type: GPU
`
	info := parseSystemProfiler(out)
	if info.Vendor != VendorOther {
		t.Errorf("expected other for Apple silicon, got %s", info.Vendor)
	}
	if info.Name != "Apple M2 Pro" {
		t.Errorf("expected chipset model name, got '%s'", info.Name)
	}
}

func TestParseSystemProfiler_AMD(t *testing.T) {
	out := "      Chipset Model: AMD Radeon Pro 5500M\n"
	if info := parseSystemProfiler(out); info.Vendor != VendorAMD {
		t.Errorf("expected amd, got %s", info.Vendor)
	}
}
