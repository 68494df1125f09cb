// Package objectclient defines the contract between the host file-storage
// layer and the object-store providers (S3, Azure Blob, Google Cloud Storage,
// MinIO).
//
// # Contract
//
// ObjectClient covers availability, connection and permission testing,
// presigned URLs, upload limits and byte-range proxying. Expected failures
// are result values (ConnectionResult, PermissionResult); errors are kept for
// contract violations such as requesting a presigned URL from a client that
// does not support them.
//
// # Defaults
//
// Base carries the behaviour of an unconfigured client. Providers embed it
// and override what they implement:
//
//	type Client struct {
//	    objectclient.Base
//	    api s3API
//	}
//
// # Probes
//
// RunPermissionChecks and ProbeRange implement the permission and range
// tests once, on top of the small Prober interface each provider exposes.
//
// # Keys
//
// Objects are addressed by content hash; KeyFromHash spreads them over two
// directory levels ("ab/cd/abcdef...").
package objectclient
