// Package errs provides the error type shared by the object client contract
// and every storage provider.
//
// Providers wrap their SDK errors into *errs.Error so callers can branch on
// the failure kind without importing provider packages. Most failures of the
// client contract are reported as result values (see core/objectclient); only
// programming-contract violations such as calling an unsupported capability
// come back as errors.
//
// Usage:
//
//	url, err := client.GeneratePresignedURL(ctx, hash, nil)
//	if errs.IsUnsupported(err) {
//	    // serve the file through the host instead
//	}
package errs
