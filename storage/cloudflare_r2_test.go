package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{name: "bare host", base: "https://cdn.example.com", key: "reports/abc.txt", want: "https://cdn.example.com/reports/abc.txt"},
		{name: "trailing slash", base: "https://cdn.example.com/", key: "reports/abc.txt", want: "https://cdn.example.com/reports/abc.txt"},
		{name: "leading slash on key", base: "https://cdn.example.com/", key: "/reports/abc.txt", want: "https://cdn.example.com/reports/abc.txt"},
		{name: "base with path", base: "https://cdn.example.com/public", key: "reports/abc.txt", want: "https://cdn.example.com/public/reports/abc.txt"},
		{name: "empty key", base: "https://cdn.example.com", key: "", want: ""},
		{name: "empty base", base: "", key: "reports/abc.txt", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicURL(tt.base, tt.key))
		})
	}
}

func TestNewCloudflareR2UploaderRejectsPartialConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:  "account",
		BucketName: "bucket",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidR2Config))
}

func TestCloudflareR2UploaderConfigIsZero(t *testing.T) {
	assert.True(t, CloudflareR2UploaderConfig{}.IsZero())
	assert.False(t, CloudflareR2UploaderConfig{BucketName: "b"}.IsZero())
}
