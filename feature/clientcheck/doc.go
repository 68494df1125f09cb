// Package clientcheck exposes the object client checks over HTTP.
//
// # Routes
//
//	GET /client/ready           readiness decision; 503 when not ready
//	GET /client/check?delete=   diagnostics messages
//	GET /client/presign/:hash   pre-signed download URL; 501 when unsupported
//	GET /client/range/:hash     proxied byte range (Range header); 206 on success
//
// The check route uses client.test_delete when the delete query parameter
// is missing.
//
// Errors from the client are mapped to status codes by kind: invalid input
// is 400, not found 404, permission denied 403, unsupported operations and
// unhandled ranges 501.
package clientcheck
