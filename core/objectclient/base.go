package objectclient

import (
	"context"

	"objectfs/core/errs"
)

// ErrNotHandled is returned by ProxyRangeRequest when the client does not
// serve the range itself.
var ErrNotHandled = errs.New(errs.KindNotHandled, "range request not handled by client")

// Base provides the default behaviour of an unconfigured client. Providers
// embed it and override the capabilities they implement.
type Base struct {
	cfg Config
}

// NewBase returns a Base holding a copy of cfg.
func NewBase(cfg Config) Base {
	return Base{cfg: cfg}
}

// Config returns the client configuration.
func (b Base) Config() Config {
	return b.cfg
}

// CheckAvailability is false: there is no SDK client behind Base.
func (b Base) CheckAvailability() bool {
	return false
}

func (b Base) TestConnection(ctx context.Context) ConnectionResult {
	return ConnectionResult{Success: false, Details: ""}
}

func (b Base) TestPermissions(ctx context.Context, testDelete bool) PermissionResult {
	return PermissionResult{
		Success:  false,
		Messages: []Message{{Text: MsgPermissionsNotTestable, Severity: SeverityError}},
	}
}

func (b Base) SupportsPresignedURLs() bool {
	return false
}

func (b Base) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	return "", errs.New(errs.KindUnsupportedOperation, "pre-signed URLs not supported")
}

// MaxUploadSize returns the configured ceiling.
func (b Base) MaxUploadSize() int64 {
	return b.cfg.MaxUploadBytes.Bytes()
}

func (b Base) ProxyRangeRequest(ctx context.Context, file File, rng Range) ([]byte, error) {
	return nil, ErrNotHandled
}

func (b Base) TestRangeRequest(ctx context.Context) bool {
	return false
}

// Key maps a content hash to the object key under the configured prefix.
func (b Base) Key(contentHash string) string {
	return KeyFromHash(b.cfg.KeyPrefix, contentHash)
}

// PermissionKey is the key of the object written by permission tests.
func (b Base) PermissionKey() string {
	return b.cfg.KeyPrefix + PermissionCheckKey
}

var _ ObjectClient = Base{}
