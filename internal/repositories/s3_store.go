package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds the bucket and object the catalog is kept in.
type S3Config struct {
	Region    string
	Bucket    string
	Key       string
	Endpoint  string // optional; set for MinIO or other S3-compatible servers
	PathStyle bool
}

// S3DocumentStore keeps the catalog as a single S3 object.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3DocumentStore builds an S3 client from the default AWS credential chain.
func NewS3DocumentStore(ctx context.Context, cfg S3Config) (*S3DocumentStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3DocumentStoreWithClient(client, cfg.Bucket, cfg.Key), nil
}

// NewS3DocumentStoreWithClient wraps an already configured client.
func NewS3DocumentStoreWithClient(client *s3.Client, bucket, key string) *S3DocumentStore {
	return &S3DocumentStore{client: client, bucket: bucket, key: key}
}

// Read downloads the object, or returns ErrNoDocument if it does not exist.
func (s *S3DocumentStore) Read(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return data, nil
}

// Write uploads data, replacing any previous object.
func (s *S3DocumentStore) Write(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &s.key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}

func isS3NotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var status interface{ HTTPStatusCode() int }
	return errors.As(err, &status) && status.HTTPStatusCode() == http.StatusNotFound
}
