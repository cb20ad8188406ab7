// Package camilla is a minimal client for the CamillaDSP websocket server.
//
// CamillaDSP commands are sent as JSON text frames. A command without
// arguments is the bare JSON string of its name ("GetVersion"), and the server
// answers with an object keyed by the same name:
//
//	{"GetVersion":{"result":"Ok","value":"3.0.0"}}
//
// A Session performs strictly one request and reads strictly one reply per
// call. Nothing is retried and there is no deadline unless the caller's
// context carries one.
package camilla
