package camilla

import (
	"fmt"
	"net/url"
)

// DaemonUnreachableError reports a transport or handshake failure while connecting.
type DaemonUnreachableError struct {
	URI *url.URL
	Err error
}

func (e *DaemonUnreachableError) Error() string {
	return fmt.Sprintf("cannot connect to dsp at address %s: %v", e.URI, e.Err)
}

func (e *DaemonUnreachableError) Unwrap() error { return e.Err }

// UnexpectedHandshakeStatusError reports that the server answered the upgrade
// request with something other than a successful handshake.
type UnexpectedHandshakeStatusError struct {
	URI    *url.URL
	Status int
}

func (e *UnexpectedHandshakeStatusError) Error() string {
	return fmt.Sprintf("dsp connection at %s returned unexpected status code (%d)", e.URI, e.Status)
}

// MalformedResponseError reports a reply that could not be decoded or lacks
// the expected fields.
type MalformedResponseError struct {
	Command string
	Reason  string
	Payload []byte
}

func (e *MalformedResponseError) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("malformed %s response: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("malformed %s response: %s: %q", e.Command, e.Reason, truncate(e.Payload, 256))
}

// CommandFailedError reports a well-formed reply whose result is not "Ok".
type CommandFailedError struct {
	Command string
	Result  string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("dsp rejected %s: result %s", e.Command, e.Result)
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
