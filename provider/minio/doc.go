// Package minio implements the object client for MinIO on top of the
// core/storage wrapper.
package minio
