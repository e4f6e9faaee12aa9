// Package storage uploads member avatars to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/crewdeck-dev/crewdeck/internal/config"
)

type ObjectStorage struct {
	client *s3.Client
	bucket string
	region string
}

// NewObjectStorage builds an S3 client from static credentials and a region.
func NewObjectStorage(cfg *config.Config) *ObjectStorage {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	})

	return &ObjectStorage{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

// UploadObject stores body under key and returns the object's public URL.
func (s *ObjectStorage) UploadObject(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}

	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
