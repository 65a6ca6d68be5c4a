// Package base64 decodes the data URLs clients send for hotel images.
package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var (
	ErrInvalidDataURL     = errors.New("image must be a base64 data url")
	ErrUnsupportedContent = errors.New("unsupported image content type")
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/webp": "webp",
}

// GetContentType returns the media type declared by a data URL, or "" when the URL is malformed.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	end := strings.Index(file, base64Marker)
	if end <= len(dataPrefix) {
		return ""
	}

	return file[len(dataPrefix):end]
}

// Image is a decoded upload ready to be stored.
type Image struct {
	ContentType string
	Extension   string
	Data        []byte
}

// DecodeImage parses a data URL and only accepts the raster formats hotels may carry.
func DecodeImage(dataURL string) (Image, error) {
	contentType := GetContentType(dataURL)
	if contentType == "" {
		return Image{}, ErrInvalidDataURL
	}

	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedContent, contentType)
	}

	payload := dataURL[strings.Index(dataURL, base64Marker)+len(base64Marker):]

	data, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	if len(data) == 0 {
		return Image{}, ErrInvalidDataURL
	}

	return Image{ContentType: contentType, Extension: ext, Data: data}, nil
}
