// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// rpc-param-converter turns positional command-line parameters for a
// JSON-RPC method into the typed JSON array sent as the request "params".
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/rpc-param-converter/cmd/rpc-param-converter@latest
//
// # Usage
//
//	rpc-param-converter [FLAGS] METHOD [PARAM...]
//	rpc-param-converter rules [--json] [METHOD]
//
// Flags must come before METHOD; everything after it is a parameter, so
// negative numbers such as -1 are passed through untouched.
//
// # Flags
//
//	-c, --config   Configuration file, JSON or YAML (default: $RPC_PARAM_CONVERTER_CONFIG)
//	-r, --request  Print the full JSON-RPC request instead of the params array
//	    --id       Request id used with --request
//	-p, --pretty   Indent JSON output
//	-v, --verbose  Log which parameters were parsed as JSON
//
// # Examples
//
// Convert a block height:
//
//	rpc-param-converter getblockhash 5
//	[5]
//
// Build the request body for curl:
//
//	rpc-param-converter --request sendtoaddress 1AddrXYZ 1.5 |
//	  curl --user rpcuser --data-binary @- http://127.0.0.1:9332/
//
// Show which positions of sendmany are parsed as JSON:
//
//	rpc-param-converter rules sendmany
package main
