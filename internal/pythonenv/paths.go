// Package pythonenv resolves the on-disk layout of the bundled ComfyUI
// Python environment and runs the embedded probe scripts with its
// interpreter.
package pythonenv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Env describes where the bundled ComfyUI tree and its interpreters live.
type Env struct {
	comfyDir  string
	vendorDir string
	pythonBin string // explicit override, wins over venv and bundled interpreters
}

func New(comfyDir, vendorDir, pythonBin string) *Env {
	return &Env{
		comfyDir:  comfyDir,
		vendorDir: vendorDir,
		pythonBin: pythonBin,
	}
}

// ComfyUIDir returns the root of the ComfyUI tree (contains main.py).
func (e *Env) ComfyUIDir() string {
	return e.comfyDir
}

// VenvDir returns the virtual environment directory inside the ComfyUI tree.
func (e *Env) VenvDir() string {
	return filepath.Join(e.comfyDir, ".venv")
}

// VenvPython returns the interpreter inside the virtual environment.
func (e *Env) VenvPython() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.VenvDir(), "Scripts", "python.exe")
	}
	return filepath.Join(e.VenvDir(), "bin", "python")
}

// BundledPython returns the standalone interpreter shipped in the vendor
// directory, used before the virtual environment exists.
func (e *Env) BundledPython() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(e.vendorDir, "python", name)
}

// MainPy returns the ComfyUI entry point script.
func (e *Env) MainPy() string {
	return filepath.Join(e.comfyDir, "main.py")
}

// CustomNodeDir returns the directory of a named ComfyUI custom node.
func (e *Env) CustomNodeDir(name string) string {
	return filepath.Join(e.comfyDir, "custom_nodes", name)
}

// Interpreter picks the Python interpreter to probe with: the explicit
// override when set, otherwise the venv interpreter, otherwise the bundled
// one. The chosen path must exist on disk.
func (e *Env) Interpreter() (string, error) {
	if e.pythonBin != "" {
		if fileExists(e.pythonBin) {
			return e.pythonBin, nil
		}
		return "", fmt.Errorf("configured python interpreter not found at %s", e.pythonBin)
	}

	if fileExists(e.VenvPython()) {
		return e.VenvPython(), nil
	}
	if fileExists(e.BundledPython()) {
		return e.BundledPython(), nil
	}

	return "", fmt.Errorf("no python interpreter found (checked %s and %s)", e.VenvPython(), e.BundledPython())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
