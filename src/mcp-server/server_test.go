// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/logger"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer starts an in-process server with the default tools and
// resources bound to cfg.
func startServer(t *testing.T, cfg *config.Config, log logger.Logger) *client.Client {
	t.Helper()

	b := NewServerBuilder().WithConfig(cfg).WithLogger(log).WithDefaultTools()

	srv := mcptest.NewUnstartedServer(t)
	srv.AddTools(b.serverTools()...)
	srv.AddResources(createResources()...)

	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Close)

	return srv.Client()
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	result, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)

	var content strings.Builder
	for _, item := range result.Content {
		if tc, ok := item.(mcp.TextContent); ok {
			content.WriteString(tc.Text)
		}
	}
	return content.String(), result.IsError
}

func TestConvertRPCParamsTool(t *testing.T) {
	c := startServer(t, nil, nil)

	tests := []struct {
		name      string
		args      map[string]any
		expectErr bool
		expected  string
		contains  []string
	}{
		{
			name:     "block height",
			args:     map[string]any{"method": "getblockhash", "params": []any{"5"}},
			expected: `[5]`,
		},
		{
			name:     "amount",
			args:     map[string]any{"method": "sendtoaddress", "params": []any{"1AddrXYZ", "1.5"}},
			expected: `["1AddrXYZ",1.5]`,
		},
		{
			name:     "unknown method keeps strings",
			args:     map[string]any{"method": "unknownmethod", "params": []any{"foo", "123"}},
			expected: `["foo","123"]`,
		},
		{
			name:     "no params",
			args:     map[string]any{"method": "getblockcount"},
			expected: `[]`,
		},
		{
			name:     "full request",
			args:     map[string]any{"method": "createmultisig", "params": []any{"2", `["key1","key2"]`}, "request": true, "id": "42"},
			expected: `{"jsonrpc":"1.0","id":42,"method":"createmultisig","params":[2,["key1","key2"]]}`,
		},
		{
			name:      "malformed fragment",
			args:      map[string]any{"method": "getblockhash", "params": []any{"notanumber"}},
			expectErr: true,
			contains:  []string{"getblockhash", "parameter 0", "notanumber"},
		},
		{
			name:      "missing method",
			args:      map[string]any{"params": []any{"1"}},
			expectErr: true,
			contains:  []string{"method parameter required"},
		},
		{
			name:      "non-string params",
			args:      map[string]any{"method": "getblockhash", "params": []any{5}},
			expectErr: true,
			contains:  []string{"invalid arguments"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, c, "convert_rpc_params", tt.args)
			assert.Equal(t, tt.expectErr, isErr, "result: %s", text)
			if tt.expected != "" {
				assert.JSONEq(t, tt.expected, text)
			}
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
		})
	}
}

func TestConvertRPCParamsTool_Config(t *testing.T) {
	cfg := config.Default()
	cfg.JSONRPC.Version = "2.0"
	cfg.JSONRPC.ID = "ops"
	cfg.Output.Pretty = true
	cfg.Rules = []params.Rule{{Method: "getblockstats", Index: 0}}

	var logs bytes.Buffer
	c := startServer(t, cfg, logger.NewJSONLogger(&logs, false))

	text, isErr := callTool(t, c, "convert_rpc_params", map[string]any{
		"method":  "getblockstats",
		"params":  []any{"1000"},
		"request": true,
	})
	require.False(t, isErr, text)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"ops","method":"getblockstats","params":[1000]}`, text)
	assert.Contains(t, text, "\n  ", "output should be indented")

	_, isErr = callTool(t, c, "convert_rpc_params", map[string]any{
		"method": "getblockstats",
		"params": []any{"{"},
	})
	assert.True(t, isErr)
	assert.Contains(t, logs.String(), "tool convert_rpc_params rejected input")
}

func TestListConversionRulesTool(t *testing.T) {
	c := startServer(t, nil, nil)

	text, isErr := callTool(t, c, "list_conversion_rules", map[string]any{"method": "gettxout"})
	require.False(t, isErr, text)

	var rules []params.Rule
	require.NoError(t, json.Unmarshal([]byte(text), &rules))
	assert.Equal(t, []params.Rule{{Method: "gettxout", Index: 1}, {Method: "gettxout", Index: 2}}, rules)

	text, isErr = callTool(t, c, "list_conversion_rules", nil)
	require.False(t, isErr, text)
	require.NoError(t, json.Unmarshal([]byte(text), &rules))
	assert.Len(t, rules, len(params.DefaultRules))

	text, isErr = callTool(t, c, "list_conversion_rules", map[string]any{"method": "getinfo"})
	require.False(t, isErr, text)
	assert.JSONEq(t, `[]`, text)
}

func TestParseJSONFragmentTool(t *testing.T) {
	c := startServer(t, nil, nil)

	tests := []struct {
		fragment  string
		expected  string
		expectErr bool
	}{
		{fragment: "1.5", expected: `{"type":"number","value":1.5}`},
		{fragment: "true", expected: `{"type":"boolean","value":true}`},
		{fragment: "null", expected: `{"type":"null","value":null}`},
		{fragment: `"abc"`, expected: `{"type":"string","value":"abc"}`},
		{fragment: `["a",1]`, expected: `{"type":"array","value":["a",1]}`},
		{fragment: `{"k":0.1}`, expected: `{"type":"object","value":{"k":0.1}}`},
		{fragment: "abc", expectErr: true},
		{fragment: "1,2", expectErr: true},
		{fragment: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			text, isErr := callTool(t, c, "parse_json_fragment", map[string]any{"fragment": tt.fragment})
			assert.Equal(t, tt.expectErr, isErr, "result: %s", text)
			if tt.expectErr {
				assert.Contains(t, text, "error parsing JSON")
				return
			}
			assert.JSONEq(t, tt.expected, text)
		})
	}
}

func TestResources(t *testing.T) {
	c := startServer(t, nil, nil)

	tests := []struct {
		uri      string
		mimeType string
		contains []string
	}{
		{uri: "config://template", mimeType: "application/json", contains: []string{`"jsonrpc"`, `"getblockstats"`}},
		{uri: "info://version", mimeType: "application/json", contains: []string{`"version"`, `"convert_rpc_params"`, `"defaultRules"`}},
		{uri: "docs://parameter-conversion", mimeType: "text/markdown", contains: []string{"# Parameter Conversion"}},
		{uri: "rules://default", mimeType: "application/json", contains: []string{`"createmultisig"`}},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result, err := c.ReadResource(context.Background(), mcp.ReadResourceRequest{
				Params: mcp.ReadResourceParams{URI: tt.uri},
			})
			require.NoError(t, err)
			require.NotEmpty(t, result.Contents)

			content, ok := result.Contents[0].(mcp.TextResourceContents)
			require.True(t, ok, "got %T", result.Contents[0])
			assert.Equal(t, tt.mimeType, content.MIMEType)
			for _, s := range tt.contains {
				assert.Contains(t, content.Text, s)
			}
		})
	}

	_, err := c.ReadResource(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "nonexistent://resource"},
	})
	assert.Error(t, err)
}

func TestLoadInstructions(t *testing.T) {
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	require.NoError(t, err)

	for _, name := range []string{"convert_rpc_params", "list_conversion_rules", "parse_json_fragment"} {
		assert.Contains(t, instructions, "`"+name+"`")
	}
	assert.NotContains(t, instructions, "{{")
}

func TestServerBuilder_Build(t *testing.T) {
	s, err := NewServerBuilder().
		WithVersion("1.3.3.7-testing").
		WithInstructions("test").
		WithDefaultTools().
		WithResources(createResources()...).
		Build()
	require.NoError(t, err)
	assert.NotNil(t, s)

	tools, toolsWithConfig := createTools()
	b := NewServerBuilder().WithDefaultTools()
	assert.Len(t, b.serverTools(), len(tools)+len(toolsWithConfig))
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}
