/*
Package suirpc contains a set of types used for JSON-RPC communication with Sui
full nodes. It defines basic request/response types as well as the errors the
client normalizes node answers into.
*/
package suirpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

type (
	// Request represents a JSON-RPC request. It's generic enough to be used in
	// many generic JSON-RPC communication scenarios, yet at the same time it's
	// tailored for the Sui RPC client needs. Sui methods expect params to be
	// an array of positional arguments.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params is a set of method-specific parameters passed to the call.
		// They can be anything as long as they can be marshaled to JSON
		// correctly and used by the method implementation on the node side.
		Params []any `json:"params"`
		// ID is an identifier associated with this request. JSON-RPC allows
		// strings to be used for it as well, but this client uses numeric
		// identifiers.
		ID uint64 `json:"id"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header, it's
	// used to construct type-specific responses.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0
	// response: http://www.jsonrpc.org/specification#response_object.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}
)
