package config

import (
	_ "embed"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed probes.yaml
var probesYAML []byte

// The manifest ships inside the binary, so it is parsed exactly once.
var probesManifest = parseManifest()

func parseManifest() ProbesConfig {
	var probes ProbesConfig
	if err := yaml.Unmarshal(probesYAML, &probes); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded probes.yaml: " + err.Error())
	}
	return probes
}

type Config struct {
	ComfyUI ComfyUIConfig
	Sidecar SidecarConfig
	Disk    DiskConfig
	Probes  ProbesConfig
}

type ComfyUIConfig struct {
	Dir       string // root of the bundled ComfyUI tree (contains main.py and .venv)
	VendorDir string // vendor directory holding the bundled interpreter
	PythonBin string // explicit interpreter override; venv interpreter is used when empty
}

type SidecarConfig struct {
	URL        string // base URL of the running ComfyUI sidecar (e.g., http://localhost:8188)
	Retries    int    // health poll attempt budget
	RetryDelay time.Duration
	Timeout    time.Duration // per-request timeout
}

type DiskConfig struct {
	MinFreeGB int // free space the installer requires next to the ComfyUI tree
}

// ProbesConfig is the embedded manifest of Python import probes.
type ProbesConfig struct {
	Probes []ProbeSpec `yaml:"probes"`
}

// ProbeSpec describes one Python package probe and the script that drives it.
type ProbeSpec struct {
	Name     string `yaml:"name"`     // probe name used on the CLI and in reports
	Package  string `yaml:"package"`  // Python package the script imports
	Script   string `yaml:"script"`   // embedded script file name
	Required bool   `yaml:"required"` // required probes fail the overall run
}

// ByName looks up a probe spec from the manifest.
func (p *ProbesConfig) ByName(name string) (ProbeSpec, bool) {
	for _, spec := range p.Probes {
		if spec.Name == name {
			return spec, true
		}
	}
	return ProbeSpec{}, false
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		ComfyUI: ComfyUIConfig{
			Dir:       envString("COMFYUI_DIR", "vendor/comfyui"),
			VendorDir: envString("VENDOR_DIR", "vendor"),
			PythonBin: os.Getenv("PYTHON_BIN"),
		},
		Sidecar: SidecarConfig{
			URL:        envString("COMFYUI_URL", "http://localhost:8188"),
			Retries:    envInt("SIDECAR_HEALTH_RETRIES", 10),
			RetryDelay: time.Duration(envInt("SIDECAR_RETRY_DELAY_SECONDS", 5)) * time.Second,
			Timeout:    time.Duration(envInt("SIDECAR_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Disk: DiskConfig{
			MinFreeGB: envInt("MIN_FREE_DISK_GB", 20),
		},
		Probes: probesManifest,
	}
}
