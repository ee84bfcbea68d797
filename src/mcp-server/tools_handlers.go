// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/mark3labs/mcp-go/mcp"
)

// convertArgs are the arguments of the convert_rpc_params tool.
type convertArgs struct {
	Method  string   `json:"method"`
	Params  []string `json:"params"`
	Request bool     `json:"request"`
	ID      string   `json:"id"`
}

// fragmentResult is the reply of the parse_json_fragment tool.
type fragmentResult struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// handleConvertParams converts the parameters of one RPC method using the
// configured conversion table.
//
// A rejected parameter produces a tool error naming the method, position
// and offending text; nothing is converted in that case. With "request"
// set the reply is the full JSON-RPC request body built from the
// configured envelope.
func handleConvertParams(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	var args convertArgs
	if err := jsonrpc.UnmarshalFromMap(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Method == "" {
		return mcp.NewToolResultError("method parameter required"), nil
	}

	out, err := params.NewConverter(cfg.Table()).ConvertJSON(args.Method, args.Params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Request {
		id := args.ID
		if id == "" {
			id = cfg.JSONRPC.ID
		}
		if out, err = jsonrpc.NewRequest(args.Method, jsonrpc.ParseID(id), out, cfg.JSONRPC.Version); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to build request: %v", err)), nil
		}
	}

	if cfg.Output.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent output: %w", err)
		}
		out = buf.Bytes()
	}

	return mcp.NewToolResultText(string(out)), nil
}

// handleListRules lists the active conversion rules, optionally for a
// single method. An unknown method yields an empty list.
func handleListRules(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	table := cfg.Table()

	rules := table.Rules()
	if method := request.GetString("method", ""); method != "" {
		rules = make([]params.Rule, 0)
		for _, i := range table.Indices(method) {
			rules = append(rules, params.Rule{Method: method, Index: i})
		}
	}

	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleParseFragment parses one parameter as a JSON fragment and reports
// the resulting value with its JSON type.
func handleParseFragment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fragment, err := request.RequireString("fragment")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fragment parameter required: %v", err)), nil
	}

	value, err := params.ParseFragment(fragment)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(fragmentResult{Type: jsonType(value), Value: value})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fragment: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// jsonType names the JSON type of a value decoded by [params.ParseFragment].
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
