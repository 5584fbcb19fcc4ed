package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader, arşiv hedefi. Testlerde fake ile değiştirilir.
type Uploader interface {
	Put(ctx context.Context, key string, r io.Reader) error
}

// S3Archive, başarılı upload'ların orijinal byte'larını bir S3
// bucket'ına kopyalar. Katalog akışının parçası değildir; hata
// sadece loglanır.
type S3Archive struct {
	client *s3.Client
	bucket string
}

func NewS3Archive(ctx context.Context, bucket, region string) (*S3Archive, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}
	return &S3Archive{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (a *S3Archive) Put(ctx context.Context, key string, r io.Reader) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("S3 upload hatası: %w", err)
	}
	return nil
}
