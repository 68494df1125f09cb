// Package gcs implements the object client for Google Cloud Storage.
//
// Connection tests read the bucket attributes. Signed URLs use the V4
// scheme and need a service account key file: the email and private key
// are taken from it with google.JWTConfigFromJSON.
package gcs
