// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small read-only Client interface the
// page renderer needs to serve public assets from a bucket instead of the local
// public/ directory. This works with both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Reads object metadata (used to detect missing assets).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
