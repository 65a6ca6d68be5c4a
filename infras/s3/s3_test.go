package s3_test

import (
	"context"
	"hotelbook/config"
	"hotelbook/infras/otel/mocks"
	"hotelbook/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStore(endpoint string) s3.S3 {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotels"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = endpoint

	return s3.New(cfg, mocks.NewOtel())
}

func TestObjectKey(t *testing.T) {
	store := newStore("https://storage.example.com")

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "public domain", url: "https://cdn.example.com/hotel/abc.png", expected: "hotel/abc.png"},
		{name: "path style endpoint", url: "https://storage.example.com/hotels/hotel/abc.png", expected: "hotel/abc.png"},
		{name: "foreign url", url: "https://elsewhere.example.com/abc.png", expected: ""},
		{name: "empty", url: "", expected: ""},
		{name: "bare domain", url: "https://cdn.example.com/", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.ObjectKey(tt.url))
		})
	}
}

func TestNotConfigured(t *testing.T) {
	store := newStore("")
	ctx := context.Background()

	_, err := store.Put(ctx, "hotel", "a.png", "image/png", []byte{1})
	assert.ErrorIs(t, err, s3.ErrNotConfigured)

	assert.ErrorIs(t, store.Remove(ctx, "https://cdn.example.com/hotel/a.png"), s3.ErrNotConfigured)
	assert.NoError(t, store.Remove(ctx, "https://elsewhere.example.com/a.png"))
}
