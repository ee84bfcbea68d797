// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidConfig is returned when a configuration document does not match
// the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "jsonrpc": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "version": { "type": "string", "enum": ["1.0", "2.0"] },
        "id": { "type": "string", "minLength": 1 }
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "pretty": { "type": "boolean" }
      }
    },
    "log": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": { "type": "string", "enum": ["text", "json"] }
      }
    },
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["method", "index"],
        "properties": {
          "method": { "type": "string", "minLength": 1 },
          "index": { "type": "integer", "minimum": 0 }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// validate checks document against the configuration schema. Every violation
// is reported in the returned error.
func validate(document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
