// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so a sample KML file can be pulled from an S3
// compatible bucket instead of the working directory. This is useful in CI,
// where the sample route lives next to other fixtures rather than in the repo.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the bucket.
//   - StatObject: Checks that the sample object is present.
//   - GetObject: Streams the sample object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := client.GetObject(ctx, cfg.Storage.Bucket, "samples/Bike routes.kml", minio.GetObjectOptions{})
package storage
