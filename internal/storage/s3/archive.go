// Package s3 archives uploaded contract documents in an S3-compatible bucket.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

type archive struct {
	client   *s3.Client
	uploader *manager.Uploader
}

// NewArchive creates an S3-backed ObjectStorage. A custom endpoint (MinIO,
// LocalStack) switches the client to path-style addressing.
func NewArchive(ctx context.Context, cfg *config.S3Config) (port.ObjectStorage, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &archive{
		client:   client,
		uploader: manager.NewUploader(client),
	}, nil
}

func (a *archive) Upload(ctx context.Context, input port.ArchiveInput) (*port.ArchiveOutput, error) {
	put := &s3.PutObjectInput{
		Bucket:      aws.String(input.Bucket),
		Key:         aws.String(input.Key),
		Body:        input.Body,
		ContentType: aws.String(input.ContentType),
	}
	if input.Size > 0 {
		put.ContentLength = aws.Int64(input.Size)
	}

	result, err := a.uploader.Upload(ctx, put)
	if err != nil {
		return nil, fmt.Errorf("%w: s3 upload %s: %w", domain.ErrStorageUnavailable, input.Key, err)
	}

	etag := ""
	if result.ETag != nil {
		etag = *result.ETag
	}

	return &port.ArchiveOutput{
		Location: result.Location,
		ETag:     etag,
	}, nil
}

func (a *archive) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3 download %s: %w", domain.ErrStorageUnavailable, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: s3 download read: %w", domain.ErrStorageUnavailable, err)
	}
	return data, nil
}

func (a *archive) Delete(ctx context.Context, bucket, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: s3 delete %s: %w", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}
