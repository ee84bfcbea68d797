// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server
// template files: the server instructions template and the parameter
// conversion documentation served as a resource.
//
// Access goes through the [EmbedFS] interface, with [MagicEmbed] as the
// default implementation:
//
//	content, err := templates.MagicEmbed.ReadFile(templates.ParameterConversion)
//	if err != nil {
//		return fmt.Errorf("failed to read conversion docs: %w", err)
//	}
package templates
