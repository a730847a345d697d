package rpc

import "encoding/json"

// Request is the inbound envelope. Method is "namespace.operation".
type Request struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response echoes the request id and method and carries exactly one of
// Result / Error; the absent one is omitted, never emitted as null.
type Response struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}
