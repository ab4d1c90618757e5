// Package storage reads datasets from S3-compatible object storage.
//
// It wraps the MinIO Go client behind a small Client interface (bucket check,
// object stat and download) so that the object source can be tested against
// the mock in core/storage/mocks.
//
// # Object Source
//
// ObjectSource implements classifier.Source: it verifies that the bucket and
// the object exist, then streams the object through the classifier's CSV
// reader. Check is also used by the integrity feature to report the object's
// size and last modification time.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	src := storage.ObjectSource{Client: client, Bucket: cfg.Storage.Bucket, Object: "browscap.csv"}
//	eng, err := classifier.Initialize(ctx, src, classifier.Options{})
package storage
