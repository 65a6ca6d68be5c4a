package base64_test

import (
	"hotelbook/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: pixelPNG, expected: "image/png"},
		{name: "jpeg", input: "data:image/jpeg;base64,/9j/4AAQ", expected: "image/jpeg"},
		{name: "parameters kept", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", expected: "image/svg+xml;charset=utf-8"},
		{name: "empty string", input: "", expected: ""},
		{name: "no data prefix", input: "image/png;base64,iVBORw0KGgo=", expected: ""},
		{name: "no base64 marker", input: "data:image/png,iVBORw0KGgo=", expected: ""},
		{name: "only prefix", input: "data:", expected: ""},
		{name: "empty media type", input: "data:;base64,", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecodeImage(t *testing.T) {
	img, err := base64.DecodeImage(pixelPNG)
	require.NoError(t, err)

	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "png", img.Extension)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img.Data[:4])
}

func TestDecodeImage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not a data url", input: "https://cdn.example.com/a.png", wantErr: base64.ErrInvalidDataURL},
		{name: "unsupported type", input: "data:text/plain;base64,SGVsbG8=", wantErr: base64.ErrUnsupportedContent},
		{name: "corrupt payload", input: "data:image/png;base64,***", wantErr: base64.ErrInvalidDataURL},
		{name: "empty payload", input: "data:image/png;base64,", wantErr: base64.ErrInvalidDataURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := base64.DecodeImage(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
