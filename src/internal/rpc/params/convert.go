// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/helper/gc"
)

// Converter turns raw command-line parameters into JSON-RPC parameter values
// according to a conversion [Table].
//
// A Converter holds no mutable state and is safe for concurrent use.
type Converter struct{ table *Table }

// NewConverter returns a converter backed by table.
// A nil table selects the process-wide [Default] table.
func NewConverter(table *Table) *Converter {
	if table == nil {
		table = Default()
	}
	return &Converter{table: table}
}

// Table returns the conversion table used by c.
func (c *Converter) Table() *Table { return c.table }

// Convert converts params for method.
//
// The result has the same length and order as params. A parameter whose
// (method, index) pair is not in the table is kept as a string; a flagged
// parameter is replaced by the value returned by [ParseFragment].
//
// Conversion stops at the first malformed parameter and returns its
// *[ParseError] with Method and Index set; no partial result is returned.
func (c *Converter) Convert(method string, params []string) ([]any, error) {
	out := make([]any, 0, len(params))
	for i, raw := range params {
		if !c.table.Contains(method, i) {
			out = append(out, raw)
			continue
		}

		v, err := ParseFragment(raw)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Method = method
				perr.Index = i
				return nil, perr
			}
			return nil, fmt.Errorf("%s parameter %d: %w", method, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ConvertJSON converts params like [Converter.Convert] and serializes the
// resulting array, ready to be used as the "params" member of a request.
func (c *Converter) ConvertJSON(method string, params []string) (json.RawMessage, error) {
	values, err := c.Convert(method, params)
	if err != nil {
		return nil, err
	}
	return encode(values)
}

// Convert converts params for method using the [Default] table.
func Convert(method string, params []string) ([]any, error) {
	return NewConverter(nil).Convert(method, params)
}

// encode marshals v without HTML escaping so string parameters reach the
// server byte for byte.
func encode(v any) (json.RawMessage, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}

	data := bytes.TrimRight(buf.Bytes(), "\n")
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out, nil
}
