// SPDX-License-Identifier: MIT

// Package s3 implements answers.Sink on an S3-compatible bucket (AWS S3 or
// MinIO). Keys map to object keys directly.
//
// Environment (OpenFromEnv):
//
//	SLEBENCH_S3_BUCKET=<bucket>        (required)
//	SLEBENCH_S3_REGION=<region>        (default us-east-1)
//	SLEBENCH_S3_ENDPOINT=<url>         (optional, e.g. MinIO)
//	SLEBENCH_S3_PATH_STYLE=true|false  (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/katalvlaran/gaussjordan/answers"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

const contentType = "text/plain; charset=utf-8"

// ErrBucketRequired is returned when no bucket is configured.
var ErrBucketRequired = errors.New("answers/s3: bucket required")

// Config holds explicit construction parameters.
type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // optional custom endpoint (MinIO)
	AccessKeyID     string // optional; default credentials chain otherwise
	SecretAccessKey string
	SessionToken    string
	PathStyle       bool
}

// Sink writes answers into a single bucket.
type Sink struct {
	client *s3.Client
	bucket string
}

var _ answers.Sink = (*Sink)(nil)

// New creates a Sink from cfg.
func New(ctx context.Context, cfg Config) (*Sink, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("answers/s3: load config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(client, cfg.Bucket)
}

// NewWithClient wraps an already configured client.
func NewWithClient(client *s3.Client, bucket string) (*Sink, error) {
	if bucket == "" {
		return nil, ErrBucketRequired
	}
	if client == nil {
		return nil, errors.New("answers/s3: nil client")
	}

	return &Sink{client: client, bucket: bucket}, nil
}

// ConfigFromEnv reads the SLEBENCH_S3_* variables.
func ConfigFromEnv() Config {
	return Config{
		Bucket:          os.Getenv("SLEBENCH_S3_BUCKET"),
		Region:          os.Getenv("SLEBENCH_S3_REGION"),
		Endpoint:        os.Getenv("SLEBENCH_S3_ENDPOINT"),
		PathStyle:       strings.EqualFold(os.Getenv("SLEBENCH_S3_PATH_STYLE"), "true"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	}
}

// OpenFromEnv constructs a Sink from process environment.
func OpenFromEnv(ctx context.Context) (*Sink, error) {
	return New(ctx, ConfigFromEnv())
}

// Bucket returns the target bucket.
func (s *Sink) Bucket() string { return s.bucket }

// Driver implements answers.Sink.
func (s *Sink) Driver() answers.Driver { return answers.DriverS3 }

// Put uploads body as a text object, overwriting any existing one.
func (s *Sink) Put(ctx context.Context, key string, body []byte) error {
	k, err := answers.CleanKey(key)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &k,
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("answers/s3: put %s: %w", k, err)
	}

	return nil
}

// Clear deletes every object whose key starts with prefix.
func (s *Sink) Clear(ctx context.Context, prefix string) error {
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket: &s.bucket, Prefix: &prefix, ContinuationToken: token,
		})
		if err != nil {
			return fmt.Errorf("answers/s3: list %q: %w", prefix, err)
		}
		for _, obj := range out.Contents {
			if obj.Key == nil {
				continue
			}
			if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: obj.Key}); err != nil {
				return fmt.Errorf("answers/s3: delete %s: %w", *obj.Key, err)
			}
		}
		if out.IsTruncated == nil || !*out.IsTruncated {
			return nil
		}
		token = out.NextContinuationToken
	}
}
