package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{name: "plain text", contentType: "text/plain", expected: true},
		{name: "json", contentType: "application/json", expected: true},
		{name: "json with charset", contentType: "application/json; charset=utf-8", expected: true},
		{name: "xml", contentType: "application/xml", expected: true},
		{name: "vendor xml", contentType: "application/samlmetadata+xml", expected: true},
		{name: "text xml with ascii", contentType: "text/xml; charset=us-ascii", expected: true},
		{name: "unsupported charset", contentType: "text/html; charset=windows-1251", expected: false},
		{name: "binary", contentType: "application/octet-stream", expected: false},
		{name: "image", contentType: "image/png", expected: false},
		{name: "empty", contentType: "", expected: false},
		{name: "malformed", contentType: "text/;;", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestMaskSecret tests the MaskSecret function.
func TestMaskSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "abc", expected: "***"},
		{input: "abcd", expected: "****"},
		{input: "QVQxOjIuMDoz", expected: "********MDoz"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MaskSecret(tt.input))
		})
	}
}
