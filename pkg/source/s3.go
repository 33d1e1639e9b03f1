package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/devzarghami/translate/pkg/i18n"
)

// S3Config configures access to an S3-compatible bucket holding translation
// documents.
type S3Config struct {
	Region    string `env:"TRANSLATE_S3_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"TRANSLATE_S3_BUCKET"`
	AccessKey string `env:"TRANSLATE_S3_ACCESS_KEY"`
	SecretKey string `env:"TRANSLATE_S3_SECRET_KEY"`
	// Endpoint overrides the AWS endpoint for S3-compatible providers
	// (MinIO, R2, DigitalOcean Spaces).
	Endpoint string `env:"TRANSLATE_S3_ENDPOINT"`
	// PathStyle forces path-style addressing, required by most non-AWS
	// providers.
	PathStyle bool `env:"TRANSLATE_S3_PATH_STYLE"`
}

// S3 fetches a translation document from object storage. The format is
// derived from the object key's extension. The client is built once; each
// Fetch issues a single GetObject.
func S3(cfg S3Config, key string) (i18n.Source, error) {
	if cfg.Bucket == "" {
		return nil, ErrEmptyBucket
	}
	format, err := formatForPath(key)
	if err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}
	client := s3.New(s3.Options{}, opts...)

	return i18n.SourceFunc(func(ctx context.Context) (i18n.Tree, error) {
		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(cfg.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, wrapS3Error(err, cfg.Bucket, key)
		}
		defer out.Body.Close() //nolint:errcheck

		data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentSize))
		if err != nil {
			return nil, fmt.Errorf("source: reading s3://%s/%s: %w", cfg.Bucket, key, err)
		}

		return Decode(data, format)
	}), nil
}

// wrapS3Error maps service error codes to package sentinels so callers can
// branch with errors.Is.
func wrapS3Error(err error, bucket, key string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: s3://%s/%s", ErrObjectNotFound, bucket, key)
		}
	}
	return fmt.Errorf("source: fetching s3://%s/%s: %w", bucket, key, err)
}
