// Package minio resolves listing photo keys to presigned links in an S3-compatible bucket.
package minio

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage returns a presigning storage when objectStorage is configured,
// otherwise one that never produces links.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.ObjectStorage
	if !cfg.Enabled() {
		params.Logger.Info("Object storage is not configured; alerts will not link photos")

		return noopStorage{}, nil
	}

	return newPresignedStorage(cfg)
}

type presignedStorage struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

func newPresignedStorage(cfg *config.ObjectStorageConfig) (*presignedStorage, error) {
	// A fixed region keeps presigning local; otherwise the client asks the server for the bucket location.
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create object storage client for %s", cfg.Endpoint)
	}

	return &presignedStorage{
		client: client,
		bucket: cfg.Bucket,
		expiry: cfg.PresignExpiry,
	}, nil
}

// PhotoURL presigns a GET for key. An empty key yields an empty URL.
func (s *presignedStorage) PhotoURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", nil
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expiry, url.Values{})
	if err != nil {
		return "", errors.Wrapf(err, "failed to presign photo %s", key)
	}

	return u.String(), nil
}

type noopStorage struct{}

func (noopStorage) PhotoURL(context.Context, string) (string, error) {
	return "", nil
}
