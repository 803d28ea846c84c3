// Package media removes externally hosted images and videos once the rows
// referencing them are gone. Uploads happen in the browser; the backend only
// ever deletes.
package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Remover deletes one stored object by key.
type Remover interface {
	Remove(ctx context.Context, key string) error
}

// S3Config selects the bucket and, for S3-compatible stores such as MinIO or
// R2, a custom endpoint with static credentials.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// s3API is the subset of *s3.Client used here.
type s3API interface {
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Remover deletes objects from one bucket.
type S3Remover struct {
	client s3API
	bucket string
}

// NewS3Remover builds an S3 client from cfg. Without an endpoint the default
// AWS credential chain is used.
func NewS3Remover(ctx context.Context, cfg S3Config) (*S3Remover, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("media.NewS3Remover: bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("media.NewS3Remover: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Remover{client: client, bucket: cfg.Bucket}, nil
}

// Remove deletes key. Deleting a key that does not exist succeeds.
func (r *S3Remover) Remove(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media.S3Remover.Remove %q: %w", key, err)
	}
	return nil
}

// NopRemover is used when no bucket is configured. It only logs.
type NopRemover struct {
	Log *zap.Logger
}

func (r NopRemover) Remove(_ context.Context, key string) error {
	if r.Log != nil {
		r.Log.Debug("media removal skipped, no bucket configured", zap.String("key", key))
	}
	return nil
}
