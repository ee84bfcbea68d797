// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	sdkrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// NewRequest builds the body of a JSON-RPC request carrying params.
//
// The envelope is produced by the MCP Go SDK encoder, which always writes
// version 2.0. When version names another dialect (for example "1.0", as
// spoken by bitcoin-style nodes) the version member is replaced.
//
// Parameters:
//   - method: RPC method name, sent as is
//   - id: Request ID (string or integer; nil produces a notification)
//   - params: Serialized parameter array
//   - version: Value for the "jsonrpc" member; empty selects 2.0
//
// Returns:
//   - []byte: Encoded request body
//   - error: Error if the ID is unsupported or encoding fails
func NewRequest(method string, id any, params json.RawMessage, version string) ([]byte, error) {
	rid, err := sdkrpc.MakeID(idValue(id))
	if err != nil {
		return nil, fmt.Errorf("invalid request id %v: %w", id, err)
	}

	data, err := sdkrpc.EncodeMessage(&sdkrpc.Request{ID: rid, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if version == "" || version == mcp.JSONRPC_VERSION {
		return data, nil
	}

	temp, err := decode(data)
	if err != nil {
		return nil, err
	}
	temp["jsonrpc"] = version
	return encode(Map(temp))
}

// Marshal normalizes JSON-RPC payloads to lowercase keys with default version.
//
// It decodes the input JSON, normalizes the keys using Map(), and then
// encodes it back. Numbers are kept as [json.Number] throughout, so amounts
// and heights come out exactly as they went in.
//
// Parameters:
//   - data: Raw JSON data to normalize
//
// Returns:
//   - []byte: Normalized JSON data
//   - error: Error if decoding or encoding fails
func Marshal(data []byte) ([]byte, error) {
	temp, err := decode(data)
	if err != nil {
		return nil, err
	}
	return encode(Map(temp))
}

// Map converts a decoded JSON-RPC map to canonical lowercase key form.
//
// It handles specific JSON-RPC fields with special logic:
//   - "id": Preserves values, converting integral numbers to int64
//   - "jsonrpc": Adds default version "2.0" if missing
//
// Parameters:
//   - temp: Input map with potentially mixed-case keys
//
// Returns:
//   - map[string]any: Normalized map with lowercase keys
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any, len(temp)+1)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case "id":
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed["id"] = nil
			} else {
				fixed["id"] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed["jsonrpc"]; !ok {
		fixed["jsonrpc"] = mcp.JSONRPC_VERSION
	}

	return fixed
}

// normalizeIDValue converts integral numbers to int64 for JSON-RPC ID fields.
//
// Parameters:
//   - v: Value to normalize
//
// Returns:
//   - any: int64 if v is a whole number (float64 or json.Number), else v
func normalizeIDValue(v any) any {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	return v
}

// ParseID interprets a request ID given as text. Integers are sent as
// numbers, as bitcoin-style clients do; anything else stays a string.
func ParseID(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

// idValue maps a caller-supplied ID onto the types accepted by the SDK:
// nil, int64 or string.
func idValue(id any) any {
	switch v := normalizeIDValue(id).(type) {
	case nil, int64, string:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint32:
		return int64(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return v
	}
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
//
// It is used to turn generic tool arguments into strongly-typed structs.
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to destination struct
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var temp map[string]any
	if err := dec.Decode(&temp); err != nil {
		return nil, err
	}
	return temp, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
