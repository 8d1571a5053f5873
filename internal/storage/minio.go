package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arzan03/ThreadHive/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// publicReadPolicy lets browsers fetch uploaded images without signing.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// MediaStore keeps post images and avatars in one MinIO bucket.
type MediaStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// InitMinio connects to MinIO and makes sure the media bucket exists and is
// publicly readable. Bucket problems are logged, not fatal.
func InitMinio(ctx context.Context, cfg config.MinioConfig, logger *zap.SugaredLogger) (*MediaStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logger.Warnw("failed to check bucket existence", "bucket", cfg.Bucket, "error", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Warnw("failed to create bucket", "bucket", cfg.Bucket, "error", err)
		} else {
			logger.Infow("created bucket", "bucket", cfg.Bucket)
			if err := client.SetBucketPolicy(ctx, cfg.Bucket, fmt.Sprintf(publicReadPolicy, cfg.Bucket)); err != nil {
				logger.Warnw("failed to set bucket policy", "bucket", cfg.Bucket, "error", err)
			}
		}
	}

	return &MediaStore{client: client, bucket: cfg.Bucket, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

func (s *MediaStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", name, err)
	}
	return s.URL(name), nil
}

func (s *MediaStore) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (s *MediaStore) URL(name string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, name)
}
