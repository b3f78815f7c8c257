// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used by the export feature
// to write and read table snapshots. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket if needed.
//   - PutObject: Uploads a snapshot.
//   - GetObject: Retrieves a snapshot as a stream.
//   - ListObjects: Lists snapshots under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
