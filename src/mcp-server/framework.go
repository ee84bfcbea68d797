// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "RPC Parameter Converter"

// ToolHandler is the signature of a tool that needs no configuration.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig is the signature of a tool that reads the server
// configuration, such as the conversion table or the request envelope.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
//
// Role names the tool's purpose for the instructions template, which
// refers to tools by role rather than by name.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition that requires configuration access.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It is filled by [ServerBuilder] and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Logger          logger.Logger
	Instructions    string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
}

// ServerBuilder helps construct the [MCP] server with proper dependencies
// using a fluent interface.
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration. A nil config selects defaults.
func (b *ServerBuilder) WithConfig(config *config.Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger for tool call diagnostics. It must never write
// to stdout, which carries the protocol.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions that receive the server configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds static and dynamic resources to the MCP server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds the converter tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)
	s.AddTools(b.serverTools()...)
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}
	return s, nil
}

// serverTools binds every tool to its handler, injecting the configuration
// and logging each call.
func (b *ServerBuilder) serverTools() []server.ServerTool {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := b.deps.Logger
	if log == nil {
		log = logger.NewJSONLogger(nil, true)
	}

	tools := make([]server.ServerTool, 0, len(b.deps.Tools)+len(b.deps.ToolsWithConfig))
	for _, tool := range b.deps.Tools {
		tools = append(tools, server.ServerTool{
			Tool:    tool.Tool,
			Handler: logged(log, tool.Tool.Name, tool.Handler),
		})
	}
	for _, tool := range b.deps.ToolsWithConfig {
		handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return tool.Handler(ctx, request, cfg)
		}
		tools = append(tools, server.ServerTool{
			Tool:    tool.Tool,
			Handler: logged(log, tool.Tool.Name, handler),
		})
	}
	return tools
}

func logged(log logger.Logger, name string, next ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := next(ctx, request)
		switch {
		case err != nil:
			log.Printf("tool %s failed: %v", name, err)
		case result != nil && result.IsError:
			log.Printf("tool %s rejected input", name)
		}
		return result, err
	}
}
