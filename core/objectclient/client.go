package objectclient

import "context"

// ObjectClient is the contract every storage provider implements.
//
// Expected failures (no connection, missing permissions) are reported as
// result values. Errors are reserved for contract violations: calling a
// capability the client does not offer, or passing malformed arguments.
type ObjectClient interface {
	// Config returns the configuration the client was built with.
	Config() Config

	// CheckAvailability reports whether the provider SDK client could be
	// created. It never blocks on the network.
	CheckAvailability() bool

	// TestConnection performs a lightweight round trip to the backing store.
	TestConnection(ctx context.Context) ConnectionResult

	// TestPermissions checks write and read access and, when testDelete is
	// set, verifies that delete is not granted.
	TestPermissions(ctx context.Context, testDelete bool) PermissionResult

	// SupportsPresignedURLs reports whether GeneratePresignedURL can be used.
	SupportsPresignedURLs() bool

	// GeneratePresignedURL returns a time-limited URL for the object stored
	// under contentHash. headers may override Content-Disposition and
	// Content-Type of the response. It fails with an unsupported operation
	// error when SupportsPresignedURLs is false.
	GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error)

	// MaxUploadSize returns the upload ceiling in bytes; zero means no limit.
	MaxUploadSize() int64

	// ProxyRangeRequest serves a byte range of file straight from the store.
	// It returns ErrNotHandled when the caller should use its generic path.
	ProxyRangeRequest(ctx context.Context, file File, rng Range) ([]byte, error)

	// TestRangeRequest reports whether ProxyRangeRequest works end to end.
	TestRangeRequest(ctx context.Context) bool
}
