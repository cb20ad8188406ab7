package config

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writePlist(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "com.user.camilladsp.plist")
	if err := os.WriteFile(path, []byte("<plist/>"), 0o644); err != nil {
		t.Fatalf("write plist: %v", err)
	}
	return path
}

func TestResolveMissingPlist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.plist")
	for _, path := range []string{missing, "", filepath.Join(missing, "child")} {
		cfg, err := Resolve(Options{PlistPath: path, DSPAddress: DefaultDSPAddress, DSPPort: DefaultDSPPort})
		if cfg != nil {
			t.Fatalf("Resolve(%q) returned config %+v", path, cfg)
		}
		var notFound *DescriptorNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Resolve(%q) error = %v, want DescriptorNotFoundError", path, err)
		}
		if notFound.Path != path {
			t.Fatalf("DescriptorNotFoundError.Path = %q, want %q", notFound.Path, path)
		}
	}
}

func TestResolveBuildsURL(t *testing.T) {
	plist := writePlist(t)
	cfg, err := Resolve(Options{PlistPath: plist, DSPAddress: "127.0.0.1", DSPPort: 9090, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := cfg.DSPURL.String(); got != "ws://127.0.0.1:9090" {
		t.Fatalf("DSPURL = %q", got)
	}
	if cfg.PlistPath != plist || cfg.DSPPort != 9090 || cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestResolveChecksPlistBeforeAddress(t *testing.T) {
	_, err := Resolve(Options{PlistPath: filepath.Join(t.TempDir(), "x"), DSPAddress: "bad host", DSPPort: 0})
	var notFound *DescriptorNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want DescriptorNotFoundError", err)
	}
}

func TestDaemonURL(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"127.0.0.1", 9090, "ws://127.0.0.1:9090"},
		{"localhost", 1234, "ws://localhost:1234"},
		{"::1", 9090, "ws://[::1]:9090"},
		{"dsp.local", 65535, "ws://dsp.local:65535"},
		{"[::1]", 9090, "ws://[::1]:9090"},
		{"fe80::1", 1234, "ws://[fe80::1]:1234"},
	}
	for _, tt := range tests {
		u, err := DaemonURL(tt.host, tt.port)
		if err != nil {
			t.Fatalf("DaemonURL(%q, %d): %v", tt.host, tt.port, err)
		}
		if u.String() != tt.want {
			t.Fatalf("DaemonURL(%q, %d) = %q, want %q", tt.host, tt.port, u.String(), tt.want)
		}
		if u.Scheme != "ws" {
			t.Fatalf("scheme = %q", u.Scheme)
		}
	}
}

func TestDaemonURLInvalid(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
	}{
		{"empty host", "", 9090},
		{"space in host", "bad host", 9090},
		{"path in host", "host/path", 9090},
		{"credentials", "user@host", 9090},
		{"fragment", "host#frag", 9090},
		{"query", "host?x=1", 9090},
		{"double bracketed ipv6", "[[::1]]", 9090},
		{"bracketed ipv4", "[127.0.0.1]", 9090},
		{"bracketed name", "[localhost]", 9090},
		{"stray closing bracket", "a]b", 9090},
		{"stray opening bracket", "a[b", 9090},
		{"colon in name", "a:b", 9090},
		{"host with port", "127.0.0.1:80", 9090},
		{"zero port", "127.0.0.1", 0},
		{"negative port", "127.0.0.1", -1},
		{"port too large", "127.0.0.1", 70000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := DaemonURL(tt.host, tt.port)
			if u != nil {
				t.Fatalf("expected nil URL, got %s", u)
			}
			var invalid *InvalidAddressError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidAddressError", err)
			}
			if invalid.Host != tt.host || invalid.Port != tt.port {
				t.Fatalf("error fields = %q/%d", invalid.Host, invalid.Port)
			}
			if invalid.Err == nil || errors.Unwrap(err) == nil {
				t.Fatal("expected underlying cause")
			}
		})
	}
}

func TestResolveInvalidAddress(t *testing.T) {
	_, err := Resolve(Options{PlistPath: writePlist(t), DSPAddress: "bad host", DSPPort: 9090})
	var invalid *InvalidAddressError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidAddressError", err)
	}
}

func TestDaemonURLRoundTrips(t *testing.T) {
	for _, host := range []string{"127.0.0.1", "localhost", "::1", "[::1]", "dsp.local"} {
		u, err := DaemonURL(host, 9090)
		if err != nil {
			t.Fatalf("DaemonURL(%q): %v", host, err)
		}
		gotHost, gotPort, err := net.SplitHostPort(u.Host)
		if err != nil {
			t.Fatalf("SplitHostPort(%q): %v", u.Host, err)
		}
		if want := strings.Trim(host, "[]"); gotHost != want || gotPort != "9090" {
			t.Fatalf("DaemonURL(%q) host/port = %q/%q", host, gotHost, gotPort)
		}
	}
}
