package config

import "fmt"

// DescriptorNotFoundError reports that the configured plist does not exist.
type DescriptorNotFoundError struct {
	Path string
}

func (e *DescriptorNotFoundError) Error() string {
	return fmt.Sprintf("plist path does not exist: %s", e.Path)
}

// InvalidAddressError reports that the DSP host and port do not form a valid websocket URI.
type InvalidAddressError struct {
	Host string
	Port int
	Err  error
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid DSP address (%s) or port (%d): %v", e.Host, e.Port, e.Err)
}

func (e *InvalidAddressError) Unwrap() error { return e.Err }
