package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"locsync/core/storage"
	"locsync/core/termstore"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads downloaded export artifacts to an object-storage bucket
// so compiled translations can be served from a CDN.
type Publisher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a publisher targeting the given bucket.
func NewPublisher(client storage.Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish uploads the artifact under exports/<language>/<filename> and
// returns the object name. The bucket is created on first use.
func (p *Publisher) Publish(ctx context.Context, language string, format termstore.ExportFormat, filename string, data []byte) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	objectName := path.Join("exports", language, filename)
	_, err = p.client.PutObject(ctx, p.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: format.ContentType(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	p.logger.Info("Export published",
		zap.String("bucket", p.bucket),
		zap.String("object", objectName),
		zap.Int("bytes", len(data)))
	return objectName, nil
}
