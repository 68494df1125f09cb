// Package storage wraps the MinIO Go client behind a small interface.
//
// The minio object client (provider/minio) is built on top of this package,
// which keeps the SDK surface it needs (bucket existence, put, ranged get,
// remove, presigned get) mockable for unit tests (see core/storage/mocks).
//
// NewClient configures a transport with strict connection, TLS handshake and
// response header timeouts, so connection tests against an unreachable
// endpoint fail within TimeoutSeconds instead of hanging.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	exists, err := client.BucketExists(ctx, cfg.Bucket)
package storage
