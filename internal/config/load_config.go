package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the location of the optional config file:
// $XDG_CONFIG_HOME/revctl/config.yaml, falling back to ~/.config/revctl/config.yaml.
// An empty string is returned when neither directory can be determined.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "revctl", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "revctl", "config.yaml")
}

// DefaultPlistPath returns the per-user LaunchAgents location of the CamillaDSP plist.
// When the home directory is unknown the bare file name is returned, which is then
// resolved against the working directory.
func DefaultPlistPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return plistName
	}
	return filepath.Join(home, "Library", "LaunchAgents", plistName)
}

// LoadFile reads the YAML config file at path.
// When required is false a missing file yields an empty FileConfig and no error,
// so the default location may simply not exist.
func LoadFile(path string, required bool) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return fc, nil
}

// Apply copies every value set in the file into opts.
// Values the caller marked as explicitly set (flags given on the command line)
// are left alone; explicit is keyed by the YAML field name.
func (fc FileConfig) Apply(opts *Options, explicit func(name string) bool) error {
	if fc.PlistPath != "" && !explicit("plist_path") {
		opts.PlistPath = fc.PlistPath
	}
	if fc.DSPAddress != "" && !explicit("dsp_address") {
		opts.DSPAddress = fc.DSPAddress
	}
	if fc.DSPPort != 0 && !explicit("dsp_port") {
		opts.DSPPort = fc.DSPPort
	}
	if fc.Timeout != "" && !explicit("timeout") {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config: %w", fc.Timeout, err)
		}
		opts.Timeout = d
	}
	return nil
}
