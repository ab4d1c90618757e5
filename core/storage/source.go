package storage

import (
	"context"
	"fmt"

	"ua-capabilities/core/classifier"

	"github.com/minio/minio-go/v7"
)

// ObjectSource reads a delimited dataset stored as a single object.
type ObjectSource struct {
	Client Client
	Bucket string
	Object string
	Comma  rune
}

// Name returns the object location.
func (s ObjectSource) Name() string {
	return "s3://" + s.Bucket + "/" + s.Object
}

// Check verifies that the bucket and the object exist and returns the
// object's metadata.
func (s ObjectSource) Check(ctx context.Context) (minio.ObjectInfo, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return minio.ObjectInfo{}, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return minio.ObjectInfo{}, fmt.Errorf("bucket %s does not exist", s.Bucket)
	}

	info, err := s.Client.StatObject(ctx, s.Bucket, s.Object, minio.StatObjectOptions{})
	if err != nil {
		return minio.ObjectInfo{}, fmt.Errorf("failed to stat dataset object %s: %w", s.Object, err)
	}
	return info, nil
}

// Open checks the object and streams it through a CSV RowReader.
func (s ObjectSource) Open(ctx context.Context) (classifier.RowReader, error) {
	if _, err := s.Check(ctx); err != nil {
		return nil, err
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset object %s: %w", s.Object, err)
	}
	return classifier.NewCSVReader(obj, s.Comma), nil
}
