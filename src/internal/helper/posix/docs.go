// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - ExecutableName: Returns the executable name without extension for CLI usage
//
// Example:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.ExecutableName("rpc-param-converter") + " METHOD [PARAM...]",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
