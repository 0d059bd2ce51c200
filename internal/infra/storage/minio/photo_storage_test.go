package minio

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"lostfound/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhotoStorage_Unconfigured(t *testing.T) {
	storage, err := NewPhotoStorage(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	link, err := storage.PhotoURL(context.Background(), "photos/umbrella.jpg")
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestPresignedStorage_PhotoURL(t *testing.T) {
	storage, err := newPresignedStorage(&config.ObjectStorageConfig{
		Endpoint:      "storage.lostfound.example:9000",
		AccessKey:     "access",
		SecretKey:     "secret",
		Bucket:        "listing-photos",
		Region:        "us-east-1",
		PresignExpiry: time.Hour,
	})
	require.NoError(t, err)

	link, err := storage.PhotoURL(context.Background(), "/photos/umbrella.jpg")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "storage.lostfound.example:9000", u.Host)
	assert.Equal(t, "/listing-photos/photos/umbrella.jpg", u.Path)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestPresignedStorage_EmptyKey(t *testing.T) {
	storage, err := newPresignedStorage(&config.ObjectStorageConfig{
		Endpoint: "storage.lostfound.example:9000",
		Bucket:   "listing-photos",
		Region:   "us-east-1",
	})
	require.NoError(t, err)

	link, err := storage.PhotoURL(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, link)
}
