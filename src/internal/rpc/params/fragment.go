// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/internal/helper/gc"
)

// ParseFragment parses text denoting a single JSON value.
//
// Unlike a standalone JSON document, the fragment may be a bare scalar such
// as 42, 3.14, true or null. The text is parsed as "[" + fragment + "]" and
// the resulting array must hold exactly one element, which is returned.
// Numbers are returned as [json.Number] so that they serialize back to the
// exact text supplied.
//
// Errors are always of type *[ParseError] wrapping [ErrInvalidJSON] or
// [ErrElementCount].
func ParseFragment(fragment string) (any, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteByte('[')
	buf.WriteString(fragment)
	buf.WriteByte(']')

	// RawMessage copies its input, so the elements outlive the pooled buffer.
	var elems []json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &elems); err != nil {
		return nil, &ParseError{Index: -1, Fragment: fragment, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}
	if len(elems) != 1 {
		return nil, &ParseError{Index: -1, Fragment: fragment, Err: fmt.Errorf("%w: got %d", ErrElementCount, len(elems))}
	}

	dec := json.NewDecoder(bytes.NewReader(elems[0]))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Index: -1, Fragment: fragment, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}
	return v, nil
}
