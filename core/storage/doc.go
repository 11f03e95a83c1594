// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that scenario files can be kept in an S3 compatible
// bucket (AWS S3 or self-hosted MinIO) and fetched by name.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads an object, mapping NoSuchKey to ErrObjectNotFound.
//   - WriteObject: uploads a byte slice with a content type.
//   - ListKeys: lists keys under a prefix.
//   - EnsureBucket: creates the bucket on first use.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "scenarios/churn.yaml")
package storage
