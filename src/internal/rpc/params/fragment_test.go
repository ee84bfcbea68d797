// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package params

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     any
	}{
		{name: "integer", fragment: "42", want: json.Number("42")},
		{name: "negative decimal", fragment: "-3.14", want: json.Number("-3.14")},
		{name: "large integer keeps precision", fragment: "2100000000000000", want: json.Number("2100000000000000")},
		{name: "exponent", fragment: "1e-8", want: json.Number("1e-8")},
		{name: "true", fragment: "true", want: true},
		{name: "false", fragment: "false", want: false},
		{name: "null", fragment: "null", want: nil},
		{name: "quoted string", fragment: `"text"`, want: "text"},
		{name: "surrounding whitespace", fragment: "  7 \n", want: json.Number("7")},
		{
			name:     "array",
			fragment: `["key1","key2"]`,
			want:     []any{"key1", "key2"},
		},
		{
			name:     "object",
			fragment: `{"a":1,"b":[true,null]}`,
			want:     map[string]any{"a": json.Number("1"), "b": []any{true, nil}},
		},
		{
			name:     "raw transaction inputs",
			fragment: `[{"txid":"abcd","vout":0}]`,
			want:     []any{map[string]any{"txid": "abcd", "vout": json.Number("0")}},
		},
		{name: "empty array", fragment: "[]", want: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFragment(tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFragmentErrors(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		cause    error
	}{
		{name: "bare word", fragment: "notanumber", cause: ErrInvalidJSON},
		{name: "unterminated array", fragment: "[1,2", cause: ErrInvalidJSON},
		{name: "unterminated string", fragment: `"abc`, cause: ErrInvalidJSON},
		{name: "escape out of wrap", fragment: "1],[2", cause: ErrInvalidJSON},
		{name: "trailing comma", fragment: "1,", cause: ErrInvalidJSON},
		{name: "empty", fragment: "", cause: ErrElementCount},
		{name: "whitespace only", fragment: "   ", cause: ErrElementCount},
		{name: "two values", fragment: "1,2", cause: ErrElementCount},
		{name: "three values", fragment: `true,"x",null`, cause: ErrElementCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFragment(tt.fragment)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.cause)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.fragment, perr.Fragment)
			assert.Equal(t, -1, perr.Index)
			assert.Empty(t, perr.Method)
			assert.Contains(t, err.Error(), "error parsing JSON")
		})
	}
}

// TestParseFragmentRoundTrip verifies that serializing a parsed value and
// parsing it again yields the same value.
func TestParseFragmentRoundTrip(t *testing.T) {
	fragments := []string{
		"5",
		"1.50000000",
		"true",
		"null",
		`"a \"quoted\" value"`,
		`["02abc","03def"]`,
		`{"addr1":0.01,"addr2":2}`,
		`[{"txid":"ff","vout":1,"scriptPubKey":"76a9"}]`,
	}

	for _, fragment := range fragments {
		t.Run(fragment, func(t *testing.T) {
			first, err := ParseFragment(fragment)
			require.NoError(t, err)

			data, err := json.Marshal(first)
			require.NoError(t, err)

			second, err := ParseFragment(string(data))
			require.NoError(t, err)
			assert.Equal(t, first, second)

			again, err := json.Marshal(second)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(again))
		})
	}
}
