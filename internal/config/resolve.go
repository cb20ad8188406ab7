package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Resolve validates opts and builds the immutable Config.
//
// The plist must exist, and DSPAddress/DSPPort must combine into a websocket
// URI of the form ws://host:port. Nothing besides a stat of the plist is
// touched; in particular the daemon is never contacted here.
func Resolve(opts Options) (*Config, error) {
	if _, err := os.Stat(opts.PlistPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DescriptorNotFoundError{Path: opts.PlistPath}
		}
		return nil, fmt.Errorf("failed to check plist %s: %w", opts.PlistPath, err)
	}

	dspURL, err := DaemonURL(opts.DSPAddress, opts.DSPPort)
	if err != nil {
		return nil, err
	}

	return &Config{
		PlistPath:  opts.PlistPath,
		DSPAddress: opts.DSPAddress,
		DSPPort:    opts.DSPPort,
		DSPURL:     dspURL,
		Timeout:    opts.Timeout,
	}, nil
}

// DaemonURL combines host and port into ws://host:port.
// IPv6 literals are bracketed; a literal that already carries one pair of
// brackets ("[::1]") is accepted as is. Anything that does not round-trip as a
// bare host:port authority (paths, credentials, stray brackets or colons) is
// rejected.
func DaemonURL(host string, port int) (*url.URL, error) {
	invalid := func(err error) (*url.URL, error) {
		return nil, &InvalidAddressError{Host: host, Port: port, Err: err}
	}

	if host == "" {
		return invalid(errors.New("empty host"))
	}
	if port < 1 || port > 65535 {
		return invalid(errors.New("port out of range 1-65535"))
	}

	// Strip one pair of brackets from an IPv6 literal, JoinHostPort adds them back.
	bare := host
	if strings.HasPrefix(bare, "[") && strings.HasSuffix(bare, "]") {
		bare = bare[1 : len(bare)-1]
		if !strings.Contains(bare, ":") {
			return invalid(fmt.Errorf("%q: only IPv6 literals may be bracketed", host))
		}
	}
	if strings.ContainsAny(bare, "[]") {
		return invalid(fmt.Errorf("%q contains stray brackets", host))
	}
	// A colon is only legal inside an IPv6 literal.
	if strings.Contains(bare, ":") && net.ParseIP(bare) == nil {
		return invalid(fmt.Errorf("%q is not a valid IPv6 literal", host))
	}

	portStr := strconv.Itoa(port)
	authority := net.JoinHostPort(bare, portStr)
	u, err := url.Parse("ws://" + authority)
	if err != nil {
		return invalid(err)
	}
	if u.Host != authority || u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return invalid(fmt.Errorf("%q is not a plain host", host))
	}

	// The authority must split back into exactly what went in.
	gotHost, gotPort, err := net.SplitHostPort(u.Host)
	if err != nil {
		return invalid(err)
	}
	if gotHost != bare || gotPort != portStr {
		return invalid(fmt.Errorf("%q does not round-trip as host:port", host))
	}
	return u, nil
}
