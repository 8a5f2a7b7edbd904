// Package doctor assembles the full diagnostic probe suite for the
// Metamorphosis ComfyUI environment.
package doctor

import (
	"context"
	"fmt"

	"github.com/0shamedia/metamorphosis-doctor/internal/config"
	"github.com/0shamedia/metamorphosis-doctor/internal/gpu"
	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
	"github.com/0shamedia/metamorphosis-doctor/internal/pythonenv"
	"github.com/0shamedia/metamorphosis-doctor/internal/sidecar"
	"github.com/0shamedia/metamorphosis-doctor/internal/sysinfo"
)

// IPAdapterNodeName is the custom node the setup flow installs and the
// doctor verifies.
const IPAdapterNodeName = "ComfyUI_IPAdapter_plus"

// Env builds the python environment layout from configuration.
func Env(cfg *config.Config) *pythonenv.Env {
	return pythonenv.New(cfg.ComfyUI.Dir, cfg.ComfyUI.VendorDir, cfg.ComfyUI.PythonBin)
}

// InstallProbes returns the file-level checks that a completed
// installation must satisfy: the ComfyUI tree, its venv and interpreter,
// the entry point, the IPAdapter custom node, and enough free disk.
func InstallProbes(cfg *config.Config) []probe.Probe {
	env := Env(cfg)
	return []probe.Probe{
		probe.DirExists("comfyui-dir", env.ComfyUIDir()),
		probe.DirExists("venv", env.VenvDir()),
		probe.FileExists("venv-python", env.VenvPython()),
		probe.FileExists("main-py", env.MainPy()),
		probe.DirExists("ipadapter-node", env.CustomNodeDir(IPAdapterNodeName)),
		probe.MinFreeDisk("disk-space", env.ComfyUIDir(), uint64(cfg.Disk.MinFreeGB)*sysinfo.BytesPerGB),
	}
}

// PythonProbes returns one import probe per manifest entry.
func PythonProbes(cfg *config.Config, debug bool) []probe.Probe {
	runner := pythonenv.NewRunner(Env(cfg))
	probes := make([]probe.Probe, 0, len(cfg.Probes.Probes))
	for _, spec := range cfg.Probes.Probes {
		probes = append(probes, &probe.PythonImport{Spec: spec, Runner: runner, Debug: debug})
	}
	return probes
}

// GPUProbe wraps GPU detection. An unidentifiable GPU is a skip, not a
// failure - the app falls back to CPU execution.
func GPUProbe() probe.Probe {
	return probe.Func("gpu", func(ctx context.Context) probe.Result {
		info := gpu.Detect(ctx)
		if info.Vendor == gpu.VendorUnknown {
			return probe.Result{Status: probe.StatusSkip, Summary: "no supported GPU detected"}
		}

		summary := fmt.Sprintf("detected %s GPU", info.Vendor)
		details := []string{fmt.Sprintf("vendor: %s", info.Vendor)}
		if info.Name != "" {
			details = append(details, fmt.Sprintf("adapter: %s", info.Name))
		}
		if info.CUDAVersion != "" {
			summary = fmt.Sprintf("detected %s GPU, CUDA %s", info.Vendor, info.CUDAVersion)
			details = append(details, fmt.Sprintf("cuda version: %s", info.CUDAVersion))
		}
		return probe.Result{Status: probe.StatusPass, Summary: summary, Details: details}
	})
}

// SidecarProbe performs a single health request against the running
// sidecar.
func SidecarProbe(cfg *config.Config) probe.Probe {
	client := sidecar.New(cfg.Sidecar.URL, cfg.Sidecar.Timeout, 1, 0)
	return probe.Func("sidecar", func(ctx context.Context) probe.Result {
		if err := client.Check(ctx); err != nil {
			return probe.Result{
				Status:  probe.StatusFail,
				Summary: fmt.Sprintf("sidecar not responding at %s", client.URL()),
				Err:     err.Error(),
			}
		}
		return probe.Result{Status: probe.StatusPass, Summary: fmt.Sprintf("sidecar responding at %s", client.URL())}
	})
}

// Suite is the full doctor run: installation checks, GPU detection,
// Python import probes, and the sidecar health check.
func Suite(cfg *config.Config, debug bool) []probe.Probe {
	probes := InstallProbes(cfg)
	probes = append(probes, GPUProbe())
	probes = append(probes, PythonProbes(cfg, debug)...)
	probes = append(probes, SidecarProbe(cfg))
	return probes
}

// Run executes the full suite into a report.
func Run(ctx context.Context, cfg *config.Config, onStep func(probe.Result)) *probe.Report {
	return probe.NewRunner(Suite(cfg, false)...).Run(ctx, onStep)
}
