// Package provider selects the object client implementation.
//
// Each provider lives in its own subpackage and embeds objectclient.Base,
// overriding the capabilities its SDK offers:
//
//	| Provider | Filesystem          | Presigned URLs              |
//	|----------|---------------------|-----------------------------|
//	| s3       | s3_file_system      | always                      |
//	| azure    | azure_file_system   | with an account key         |
//	| gcs      | gcs_file_system     | with a service account file |
//	| minio    | minio_file_system   | always                      |
//
// New never fails because an SDK client cannot be created; the client it
// returns reports CheckAvailability false instead, so readiness stops at the
// availability step. Only an unknown provider name is an error.
package provider
