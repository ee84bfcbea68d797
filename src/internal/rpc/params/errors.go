// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is the cause of a [ParseError] when the wrapped
	// fragment is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrElementCount is the cause of a [ParseError] when the wrapped
	// fragment does not hold exactly one value.
	ErrElementCount = errors.New("fragment must hold exactly one JSON value")
)

// ParseError reports a parameter that could not be parsed as a single JSON
// value. Fragment always holds the original text as supplied by the caller.
//
// Method is empty and Index is -1 when the error comes straight from
// [ParseFragment] rather than from a [Converter].
type ParseError struct {
	Method   string
	Index    int
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("error parsing JSON: %s: %v", e.Fragment, e.Err)
	}
	return fmt.Sprintf("error parsing JSON for %s parameter %d: %s: %v", e.Method, e.Index, e.Fragment, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
