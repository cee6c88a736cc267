package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/OMAR684257931/nawy-apartments/internal/config"
)

// S3Deps bundles the S3 client with the bucket settings the upload path
// needs. Works against AWS or any S3-compatible endpoint (MinIO in local
// development).
type S3Deps struct {
	Client        *s3.Client
	Uploader      *manager.Uploader
	Bucket        string
	PublicBaseURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = &cfg.S3.Endpoint
		}
		o.UsePathStyle = cfg.S3.ForcePathStyle
	})

	return &S3Deps{
		Client:        client,
		Uploader:      manager.NewUploader(client),
		Bucket:        cfg.S3.Bucket,
		PublicBaseURL: strings.TrimSuffix(cfg.S3.PublicBaseURL, "/"),
	}, nil
}

// Upload stores an object under key and returns its public URL.
func (d *S3Deps) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := d.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      &d.Bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return d.PublicBaseURL + "/" + key, nil
}
