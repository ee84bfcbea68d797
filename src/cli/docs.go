// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the RPC parameter converter.
// It implements a Cobra-based CLI that converts positional parameters for a
// JSON-RPC method into the typed "params" array (or the full request body),
// and lists the active conversion rules as a markdown table or JSON.
// The package loads configuration through the config package and reports
// through the logger package.
package cli
