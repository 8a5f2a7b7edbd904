package pythonenv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestVenvPython_PlatformSuffix(t *testing.T) {
	env := New("/opt/app/vendor/comfyui", "/opt/app/vendor", "")

	python := env.VenvPython()
	if runtime.GOOS == "windows" {
		if !strings.HasSuffix(python, filepath.Join("Scripts", "python.exe")) {
			t.Errorf("expected Scripts\\python.exe suffix on windows, got '%s'", python)
		}
	} else {
		if !strings.HasSuffix(python, filepath.Join("bin", "python")) {
			t.Errorf("expected bin/python suffix, got '%s'", python)
		}
	}

	if !strings.Contains(python, ".venv") {
		t.Errorf("expected venv interpreter inside .venv, got '%s'", python)
	}
}

func TestCustomNodeDir(t *testing.T) {
	env := New("/opt/app/vendor/comfyui", "/opt/app/vendor", "")

	dir := env.CustomNodeDir("ComfyUI_IPAdapter_plus")
	expected := filepath.Join("/opt/app/vendor/comfyui", "custom_nodes", "ComfyUI_IPAdapter_plus")
	if dir != expected {
		t.Errorf("expected '%s', got '%s'", expected, dir)
	}
}

func TestInterpreter_OverrideWins(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "python3")
	if err := os.WriteFile(override, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create stub interpreter: %v", err)
	}

	env := New(filepath.Join(dir, "comfyui"), dir, override)

	python, err := env.Interpreter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if python != override {
		t.Errorf("expected override interpreter '%s', got '%s'", override, python)
	}
}

func TestInterpreter_MissingOverrideFails(t *testing.T) {
	dir := t.TempDir()
	env := New(filepath.Join(dir, "comfyui"), dir, filepath.Join(dir, "no-such-python"))

	_, err := env.Interpreter()
	if err == nil {
		t.Fatal("expected error for missing override interpreter")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' in error, got '%v'", err)
	}
}

func TestInterpreter_PrefersVenvOverBundled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub interpreters use unix paths")
	}

	dir := t.TempDir()
	comfyDir := filepath.Join(dir, "comfyui")
	env := New(comfyDir, dir, "")

	bundled := env.BundledPython()
	if err := os.MkdirAll(filepath.Dir(bundled), 0o755); err != nil {
		t.Fatalf("failed to create bundled dir: %v", err)
	}
	if err := os.WriteFile(bundled, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create bundled interpreter: %v", err)
	}

	// Only the bundled interpreter exists.
	python, err := env.Interpreter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if python != bundled {
		t.Errorf("expected bundled interpreter, got '%s'", python)
	}

	// Once the venv interpreter appears it takes precedence.
	venv := env.VenvPython()
	if err := os.MkdirAll(filepath.Dir(venv), 0o755); err != nil {
		t.Fatalf("failed to create venv dir: %v", err)
	}
	if err := os.WriteFile(venv, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create venv interpreter: %v", err)
	}

	python, err = env.Interpreter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if python != venv {
		t.Errorf("expected venv interpreter to win, got '%s'", python)
	}
}

func TestInterpreter_NoneFound(t *testing.T) {
	dir := t.TempDir()
	env := New(filepath.Join(dir, "comfyui"), dir, "")

	_, err := env.Interpreter()
	if err == nil {
		t.Fatal("expected error when no interpreter exists")
	}
}

func TestScript_EmbeddedScriptsExist(t *testing.T) {
	for _, name := range []string{"check_insightface.py", "check_onnx.py", "check_torch.py"} {
		data, err := Script(name)
		if err != nil {
			t.Errorf("expected embedded script '%s': %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("embedded script '%s' is empty", name)
		}
	}
}

func TestScript_UnknownName(t *testing.T) {
	if _, err := Script("check_nothing.py"); err == nil {
		t.Error("expected error for unknown script name")
	}
}

func TestScriptNames(t *testing.T) {
	names := ScriptNames()
	if len(names) < 3 {
		t.Fatalf("expected at least 3 embedded scripts, got %d", len(names))
	}
}
