// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/rpc/params"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/logger"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given explicitly.
const EnvConfigFile = "RPC_PARAM_CONVERTER_CONFIG"

const (
	// DefaultVersion is the JSON-RPC dialect spoken by bitcoin-style nodes.
	DefaultVersion = "1.0"
	// DefaultID is the request ID used when none is configured.
	DefaultID = "rpc-param-converter"
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the converter configuration.
type Config struct {
	// JSONRPC: Request envelope settings
	JSONRPC struct {
		// Version: Value of the "jsonrpc" member
		Version string `json:"version" yaml:"version"`
		// ID: Request ID
		ID string `json:"id" yaml:"id"`
	} `json:"jsonrpc" yaml:"jsonrpc"`

	// Output: Presentation of converted parameters
	Output struct {
		// Pretty: Indent JSON output
		Pretty bool `json:"pretty" yaml:"pretty"`
	} `json:"output" yaml:"output"`

	// Log: Logger selection
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`

	// Rules: Conversion rules added to the compiled-in table
	Rules []params.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Default returns a configuration holding only default values.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Table returns the conversion table for this configuration: the
// compiled-in rules plus any configured extras.
func (c *Config) Table() *params.Table {
	if len(c.Rules) == 0 {
		return params.Default()
	}
	return params.Default().With(c.Rules)
}

func (c *Config) applyDefaults() {
	if c.JSONRPC.Version == "" {
		c.JSONRPC.Version = DefaultVersion
	}
	if c.JSONRPC.ID == "" {
		c.JSONRPC.ID = DefaultID
	}
	if c.Log.Format != logger.FormatJSON {
		c.Log.Format = logger.FormatText
	}
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything that is not YAML is treated as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal validates data against the schema and decodes it into config.
func unmarshal(data []byte, config *Config, f format) error {
	switch f {
	case formatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if err := validate(gojsonschema.NewGoLoader(doc)); err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if !json.Valid(data) {
			return fmt.Errorf("failed to parse JSON config file: %w", json.Unmarshal(data, new(any)))
		}
		if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
			return err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration at path, or at $RPC_PARAM_CONVERTER_CONFIG
// when path is empty.
//
// Configuration Priority:
//  1. Default values are set
//  2. The RPC_PARAM_CONVERTER_CONFIG environment variable is checked if path is empty
//  3. Config file values override defaults (if a file is given)
//
// An empty file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := unmarshal(data, config, detectFormat(path)); err != nil {
			return nil, err
		}
	}
	config.applyDefaults()
	return config, nil
}
