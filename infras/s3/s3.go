package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// S3 stores catalog images. Objects are addressed by directory/name and exposed through the public domain.
type S3 interface {
	Put(ctx context.Context, directory, name, contentType string, data []byte) (url string, err error)
	Remove(ctx context.Context, url string) error
	ObjectKey(url string) string
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) S3 {
	s3Cfg := cfg.External.S3

	impl := &s3Impl{
		bucket:       s3Cfg.BucketName,
		publicDomain: strings.TrimSuffix(s3Cfg.PublicDomain, "/"),
		apiEndpoint:  strings.TrimSuffix(s3Cfg.APIEndpoint, "/"),
		otel:         otl,
	}

	if s3Cfg.BucketName == "" || s3Cfg.APIEndpoint == "" {
		log.Warn().Msg("S3 bucket or endpoint not set, image uploads are disabled")

		return impl
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration")

		return impl
	}

	impl.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return impl
}

func (svc *s3Impl) Put(ctx context.Context, directory, name, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	if svc.client == nil {
		return constant.Empty, ErrNotConfigured
	}

	key := path.Join(directory, name)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", svc.publicDomain, key), nil
}

// Remove deletes the object behind url. URLs that do not point into the bucket are ignored.
func (svc *s3Impl) Remove(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := svc.ObjectKey(url)
	if key == constant.Empty {
		return nil
	}

	if svc.client == nil {
		return ErrNotConfigured
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// ObjectKey maps a public or path-style URL back to its object key.
func (svc *s3Impl) ObjectKey(url string) string {
	if url == constant.Empty {
		return constant.Empty
	}

	prefixes := []string{}

	if svc.publicDomain != constant.Empty {
		prefixes = append(prefixes, svc.publicDomain+"/")
	}

	if svc.apiEndpoint != constant.Empty {
		prefixes = append(prefixes, fmt.Sprintf("%s/%s/", svc.apiEndpoint, svc.bucket))
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
