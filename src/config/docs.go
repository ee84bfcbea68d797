// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the converter configuration shared by the CLI and the
// MCP server. Files may be JSON or YAML and are validated against an embedded
// [JSON Schema] before they are decoded.
//
// The configuration can extend the compiled-in conversion table with extra
// (method, index) rules, so a node that gained a new non-string parameter
// can be served without a rebuild.
//
// [JSON Schema]: https://json-schema.org
package config
