// Package objectstore publishes exports to S3-compatible storage.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/maxvelasco/portuguese-map/internal/config"
	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

var ErrMissingConfig = errors.New("missing one or more required settings: S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET")

// S3Store writes objects into one bucket.
type S3Store struct {
	client *minio.Client
	bucket string
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrMissingConfig
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new s3 store: create client: %w", err)
	}

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3Store) Bucket() string { return s.bucket }

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3Store) EnsureBucket(ctx context.Context) (err error) {
	defer obs.Time(ctx, "s3.EnsureBucket")(&err)

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("ensure bucket %q: check existence: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("ensure bucket %q: create: %w", s.bucket, err)
	}
	log.Info().Str("bucket", s.bucket).Msg("bucket created")
	return nil
}

// Put overwrites key with data.
func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (err error) {
	defer obs.Time(ctx, "s3.Put")(&err)

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

var _ ports.ObjectStore = (*S3Store)(nil)
