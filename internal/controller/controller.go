// Package controller maps JSON-RPC operations onto the service layer. Each
// operation deserializes its own parameter shape; a shape mismatch is a
// domain error, not a crash.
package controller

import (
	"encoding/json"

	"ocean/internal/rpc"
)

func bindParams(op string, params json.RawMessage, out any) error {
	if len(params) == 0 {
		return rpc.BadParams(op)
	}
	if err := json.Unmarshal(params, out); err != nil {
		return rpc.BadParams(op)
	}
	return nil
}
