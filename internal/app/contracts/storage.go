package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectKey string, content []byte, contentType string) error
	GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucketName, objectKey string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectKey string, expiryTime time.Duration) (string, error)
	EnsureBucket(ctx context.Context, bucketName string) error
}
