package camilla

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/coder/websocket"

	"revctl/internal/logger"
)

// resultOk is the result string of a successful command.
const resultOk = "Ok"

// Session is an open connection to CamillaDSP.
// It is owned by a single caller and must be closed after use.
type Session struct {
	uri  *url.URL
	conn *websocket.Conn
}

// Reply is the payload CamillaDSP sends back under the command's name.
type Reply struct {
	Result string          `json:"result"`
	Value  json.RawMessage `json:"value"`
}

// Connect performs the websocket handshake with the daemon at uri.
//
// A server that answers the upgrade with an HTTP status other than
// 101 Switching Protocols yields UnexpectedHandshakeStatusError; every other
// dial failure yields DaemonUnreachableError.
func Connect(ctx context.Context, uri *url.URL) (*Session, error) {
	logger.Debug("[DEBUG] Connecting to %s\n", uri)

	conn, resp, err := websocket.Dial(ctx, uri.String(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			return nil, &UnexpectedHandshakeStatusError{URI: uri, Status: resp.StatusCode}
		}
		return nil, &DaemonUnreachableError{URI: uri, Err: err}
	}

	logger.Debug("[DEBUG] Connected to %s (%s)\n", uri, resp.Status)
	return &Session{uri: uri, conn: conn}, nil
}

// Close ends the session with a normal closure.
func (s *Session) Close() error {
	return s.conn.Close(websocket.StatusNormalClosure, "")
}

// Request sends command as a single text frame and blocks until exactly one
// frame comes back. The reply must be a UTF-8 text frame holding a JSON object
// keyed by command.
func (s *Session) Request(ctx context.Context, command string) (Reply, error) {
	payload, err := json.Marshal(command)
	if err != nil {
		return Reply{}, fmt.Errorf("encode %s: %w", command, err)
	}

	logger.Debug("[DEBUG] -> %s\n", payload)
	if err := s.conn.Write(ctx, websocket.MessageText, payload); err != nil {
		return Reply{}, fmt.Errorf("send %s to %s: %w", command, s.uri, err)
	}

	typ, data, err := s.conn.Read(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("read %s reply from %s: %w", command, s.uri, err)
	}
	logger.Debug("[DEBUG] <- %s\n", data)

	return decodeReply(command, typ, data)
}

// GetVersion asks CamillaDSP for its version string.
func (s *Session) GetVersion(ctx context.Context) (string, error) {
	const command = "GetVersion"

	reply, err := s.Request(ctx, command)
	if err != nil {
		return "", err
	}
	if len(reply.Value) == 0 || string(reply.Value) == "null" {
		return "", &MalformedResponseError{Command: command, Reason: "missing value"}
	}

	var version string
	if err := json.Unmarshal(reply.Value, &version); err != nil {
		return "", &MalformedResponseError{Command: command, Reason: "value is not a string", Payload: reply.Value}
	}
	return version, nil
}

// decodeReply extracts the reply for command from a raw frame.
func decodeReply(command string, typ websocket.MessageType, data []byte) (Reply, error) {
	if typ != websocket.MessageText {
		return Reply{}, &MalformedResponseError{Command: command, Reason: "expected a text frame, got " + typ.String()}
	}
	if !utf8.Valid(data) {
		return Reply{}, &MalformedResponseError{Command: command, Reason: "frame is not valid UTF-8", Payload: data}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Reply{}, &MalformedResponseError{Command: command, Reason: "invalid JSON: " + err.Error(), Payload: data}
	}
	body, ok := envelope[command]
	if !ok {
		return Reply{}, &MalformedResponseError{Command: command, Reason: "missing " + command + " key", Payload: data}
	}

	var reply Reply
	if err := json.Unmarshal(body, &reply); err != nil {
		return Reply{}, &MalformedResponseError{Command: command, Reason: "invalid reply body: " + err.Error(), Payload: data}
	}
	if reply.Result != "" && reply.Result != resultOk {
		return Reply{}, &CommandFailedError{Command: command, Result: reply.Result}
	}
	return reply, nil
}
