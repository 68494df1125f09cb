// Package azure implements the object client for Azure Blob Storage using
// azblob.
//
// With an account key the client authenticates with a shared key credential
// and can sign read-only SAS URLs. Without one it falls back to the default
// Azure credential chain (azidentity) and presigned URLs are unsupported.
package azure
