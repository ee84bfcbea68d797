// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the name the program was invoked as, without
// directory or ".exe" suffix, for use in CLI usage strings.
//
//   - Linux/macOS: "myapp" from "/usr/local/bin/myapp"
//   - Windows: "myapp" from "C:\bin\myapp.exe", on any host OS
//   - fallback when os.Args[0] is unavailable
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}
	return baseName(os.Args[0])
}

// baseName strips directories using both separators, so Windows paths are
// handled on Unix hosts too.
func baseName(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\' || r == filepath.Separator
	})
	name := path
	if len(parts) > 0 {
		name = parts[len(parts)-1]
	}
	return strings.TrimSuffix(name, ".exe")
}
