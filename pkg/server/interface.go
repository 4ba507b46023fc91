/*
Package server implements msgpack IPC for spell checking.

Clients write msgpack-encoded requests to the server's stdin and read one
msgpack-encoded response per request from its stdout. Requests are handled
synchronously in arrival order. Once started, the server first sends a ready status:

	{"id": "", "status": "ready"}

Every request carries an ID, which is echoed back, and an action:

	{"id": "r1", "action": "check", "w": "recieve"}
	{"id": "r2", "action": "nearest", "w": "recieve"}
	{"id": "r3", "action": "add", "w": "recieve"}
	{"id": "r4", "action": "complete", "w": "rec", "l": 5}
	{"id": "r5", "action": "stats"}
	{"id": "r6", "action": "health"}

check answers with a CheckResponse:

	{"id": "r1", "w": "recieve", "found": false}

nearest and complete answer with a WordsResponse, with time in microseconds:

	{"id": "r2", "s": ["recent", "receptacle", "recife", "recipe"], "c": 4, "t": 5210}

Invalid requests get an ErrorResponse with an HTTP-like status code:

	{"id": "r7", "e": "unknown action: spell", "c": 400}
*/
package server

// Actions understood by the server.
const (
	ActionCheck    = "check"
	ActionNearest  = "nearest"
	ActionAdd      = "add"
	ActionComplete = "complete"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Request is a single client request.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Word   string `msgpack:"w"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Found bool   `msgpack:"found"`
}

// WordsResponse answers nearest and complete requests.
type WordsResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse answers add and health requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
