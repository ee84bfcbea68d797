// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC] message handling.
// It builds request envelopes around converted parameters, normalizes JSON
// payloads (lowercase keys, default version, integral IDs) without losing
// numeric precision, and unmarshals generic maps into typed structs.
//
// [JSON-RPC]: https://www.jsonrpc.org/specification
package jsonrpc
