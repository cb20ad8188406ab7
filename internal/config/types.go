package config

import (
	"net/url"
	"time"
)

// Built-in defaults used when neither a flag nor the config file supplies a value.
const (
	DefaultDSPAddress = "127.0.0.1"
	DefaultDSPPort    = 9090

	// plistName is the launchd job definition installed for CamillaDSP.
	plistName = "com.user.camilladsp.plist"
)

// Config is the resolved, validated runtime configuration.
// It is built once per process by Resolve and is never modified afterwards.
type Config struct {
	PlistPath  string        // Existing path to the CamillaDSP launchd plist
	DSPAddress string        // Host the CamillaDSP websocket server listens on
	DSPPort    int           // Port the CamillaDSP websocket server listens on
	DSPURL     *url.URL      // ws://DSPAddress:DSPPort
	Timeout    time.Duration // Deadline for a daemon exchange, 0 means wait forever
}

// Options are the raw, unvalidated inputs to Resolve.
type Options struct {
	PlistPath  string
	DSPAddress string
	DSPPort    int
	Timeout    time.Duration
}

// FileConfig mirrors the optional YAML config file.
// Zero values mean "not set" and leave the corresponding option untouched.
//
// Example:
//
//	plist_path: /Users/me/Library/LaunchAgents/com.user.camilladsp.plist
//	dsp_address: 127.0.0.1
//	dsp_port: 1234
//	timeout: 5s
type FileConfig struct {
	PlistPath  string `yaml:"plist_path"`
	DSPAddress string `yaml:"dsp_address"`
	DSPPort    int    `yaml:"dsp_port"`
	Timeout    string `yaml:"timeout"`
}
