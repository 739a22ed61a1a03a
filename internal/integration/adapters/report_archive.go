package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/strategic-planning/backend/internal/application/adapter"
)

// S3ArchiveConfig holds the object storage settings for report archiving.
type S3ArchiveConfig struct {
	Endpoint  string // optional; set for MinIO
	Region    string
	Bucket    string
	AccessKey string // optional; falls back to the default credentials chain
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// s3ReportArchive implements the adapter.ReportArchive interface on S3 or MinIO.
type s3ReportArchive struct {
	client *s3.Client
	bucket string
}

// NewS3ReportArchive creates a report archive from the storage settings.
func NewS3ReportArchive(ctx context.Context, cfg S3ArchiveConfig) (adapter.ReportArchive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	endpoint := storageEndpoint(cfg.Endpoint, cfg.UseSSL)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return newS3ReportArchive(client, cfg.Bucket), nil
}

func newS3ReportArchive(client *s3.Client, bucket string) *s3ReportArchive {
	return &s3ReportArchive{client: client, bucket: bucket}
}

// storageEndpoint turns a MinIO style host:port into a URL.
func storageEndpoint(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// Store writes the report under the key and returns its s3:// location.
func (a *s3ReportArchive) Store(ctx context.Context, key, contentType string, body []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to store report %s: %w", key, err)
	}

	location := url.URL{Scheme: "s3", Host: a.bucket, Path: "/" + key}
	return location.String(), nil
}
