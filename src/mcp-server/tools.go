// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools returns all MCP tool definitions with their handlers, split
// into tools that need no configuration and tools that read it.
//
// The function defines the following tools:
//   - parse_json_fragment: Parses a single parameter as a JSON fragment
//   - convert_rpc_params: Converts a method's parameters into a typed params array
//   - list_conversion_rules: Lists the parameter positions parsed as JSON
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("parse_json_fragment",
				mcp.WithDescription("Parse a single command-line parameter as a JSON value, the way listed parameter positions are converted"),
				mcp.WithString("fragment",
					mcp.Required(),
					mcp.Description("Raw parameter text, e.g. '1.5', 'true' or '[\"key1\",\"key2\"]'"),
				),
			),
			Handler: handleParseFragment,
			Role:    "fragmentParser",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("convert_rpc_params",
				mcp.WithDescription("Convert positional string parameters for a JSON-RPC method into the typed JSON params array"),
				mcp.WithString("method",
					mcp.Required(),
					mcp.Description("RPC method name, e.g. 'sendtoaddress'"),
				),
				mcp.WithArray("params",
					mcp.Description("Parameters as strings, in order (default: none)"),
					mcp.WithStringItems(),
				),
				mcp.WithBoolean("request",
					mcp.Description("Return the full JSON-RPC request body instead of the params array (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("id",
					mcp.Description("Request id used when 'request' is set (default: from configuration)"),
				),
			),
			Handler: handleConvertParams,
			Role:    "converter",
		},
		{
			Tool: mcp.NewTool("list_conversion_rules",
				mcp.WithDescription("List the (method, position) pairs whose parameters are parsed as JSON"),
				mcp.WithString("method",
					mcp.Description("Only list rules for this method (default: all methods)"),
				),
			),
			Handler: handleListRules,
			Role:    "rulesLister",
		},
	}

	return tools, toolsWithConfig
}
