// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server serves the RPC parameter converter to MCP clients over stdio.
//
// Configuration is read from the file named by RPC_PARAM_CONVERTER_CONFIG.
package main

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
