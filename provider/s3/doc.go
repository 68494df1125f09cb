// Package s3 implements the object client for Amazon S3 on top of
// aws-sdk-go-v2.
//
// The connection test is a HeadBucket request. Presigned URLs are GET
// requests signed by the SDK presign client, with Content-Disposition and
// Content-Type passed as response overrides. Range requests are served with
// a ranged GetObject.
//
// SDK errors are classified into errs kinds using the smithy API error code,
// falling back to the HTTP status of the response.
package s3
