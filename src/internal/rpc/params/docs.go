// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package params converts positional command-line parameters into typed
// [JSON-RPC] parameter values.
//
// A command line only ever yields text, while the remote server expects some
// parameters to be numbers, booleans, null, arrays or objects. The package
// provides:
//   - Table: an immutable set of (method, index) rules naming the positions
//     that must be parsed as JSON instead of being sent as plain strings.
//   - ParseFragment: a permissive JSON parser accepting bare scalars such as
//     "42" or "true" by parsing the text wrapped in an enclosing array.
//   - Converter: the orchestration that turns a method name plus raw
//     parameters into the array sent as the request "params" field.
//
// Unknown methods and unlisted indices are never an error: their parameters
// are sent as JSON strings.
//
// [JSON-RPC]: https://www.jsonrpc.org/specification_v1
package params
