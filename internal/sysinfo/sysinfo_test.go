package sysinfo

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCollect(t *testing.T) {
	snap := Collect()

	if snap.OS != runtime.GOOS {
		t.Errorf("expected OS '%s', got '%s'", runtime.GOOS, snap.OS)
	}
	if snap.Arch != runtime.GOARCH {
		t.Errorf("expected Arch '%s', got '%s'", runtime.GOARCH, snap.Arch)
	}
	if snap.NumCPU < 1 {
		t.Errorf("expected at least 1 CPU, got %d", snap.NumCPU)
	}

	lines := snap.Lines()
	if len(lines) != 5 {
		t.Fatalf("expected 5 snapshot lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "OS: ") {
		t.Errorf("unexpected first line: '%s'", lines[0])
	}
}

func TestFreeDiskSpace_ExistingPath(t *testing.T) {
	free, err := FreeDiskSpace(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free == 0 {
		t.Error("expected non-zero free disk space for temp dir")
	}
}

func TestFreeDiskSpace_WalksToExistingParent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "not", "created", "yet")

	free, err := FreeDiskSpace(missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free == 0 {
		t.Error("expected non-zero free disk space via existing parent")
	}
}

func TestFormatGB(t *testing.T) {
	if got := FormatGB(BytesPerGB); got != "1.00 GB" {
		t.Errorf("expected '1.00 GB', got '%s'", got)
	}
	if got := FormatGB(BytesPerGB * 20); got != "20.00 GB" {
		t.Errorf("expected '20.00 GB', got '%s'", got)
	}
}
