// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources returns the static resources served to MCP clients.
//
//   - config://template: Example configuration file
//   - info://version: Server name, version and capabilities
//   - docs://parameter-conversion: How parameters are converted
//   - rules://default: The compiled-in conversion table
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"config://template",
				"Configuration Template",
				mcp.WithResourceDescription("Example configuration file with default values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				"info://version",
				"Version Information",
				mcp.WithResourceDescription("Server version and capabilities"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(
				"docs://parameter-conversion",
				"Parameter Conversion",
				mcp.WithResourceDescription("How command-line parameters become typed JSON values"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleConversionDocsResource,
		},
		{
			Resource: mcp.NewResource(
				"rules://default",
				"Default Conversion Rules",
				mcp.WithResourceDescription("The compiled-in (method, position) pairs parsed as JSON"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleDefaultRulesResource,
		},
	}
}

// handleConfigResource returns an example configuration holding the default
// values and one extra rule.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	example := config.Default()
	example.Rules = []params.Rule{{Method: "getblockstats", Index: 0}}
	return jsonResource(request.Params.URI, example)
}

// handleVersionResource returns server metadata and capabilities.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()

	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	for _, tool := range toolsWithConfig {
		names = append(names, tool.Tool.Name)
	}

	info := map[string]any{
		"name":    serverName,
		"version": GetVersion(),
		"type":    "rpc-param-converter",
		"capabilities": map[string]any{
			"tools":     names,
			"resources": []string{"config://template", "info://version", "docs://parameter-conversion", "rules://default"},
		},
		"defaultRules":    params.Default().Len(),
		"jsonrpcVersions": []string{"1.0", "2.0"},
	}
	return jsonResource(request.Params.URI, info)
}

// handleConversionDocsResource serves the embedded conversion documentation.
func handleConversionDocsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile(templates.ParameterConversion)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion documentation: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

// handleDefaultRulesResource serves the compiled-in conversion table.
func handleDefaultRulesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(request.Params.URI, params.Default().Rules())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
