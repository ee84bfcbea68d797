// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the RPC parameter converter over the Model
// Context Protocol ([MCP]). It registers tools that convert positional
// parameters into a typed JSON-RPC params array, list the conversion table
// and parse single JSON fragments, plus resources describing the server.
//
// The server is assembled with [ServerBuilder] and served over stdio by [Run].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
