package gcs

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"objectfs/core/errs"
	"objectfs/core/objectclient"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
)

var errUnavailable = errs.New(errs.KindUnavailableDependency, "GCS client is not available")

// Client is the object client for Google Cloud Storage.
type Client struct {
	objectclient.Base
	bucket bucketAPI
	signer *signer
	logger *zap.Logger
	now    func() time.Time
}

// New creates a GCS client. A client that could not be created reports
// itself unavailable.
func New(ctx context.Context, cfg objectclient.Config, gcsCfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{Base: objectclient.NewBase(cfg), logger: logger, now: time.Now}

	bucket, sig, err := newSDKBucket(ctx, gcsCfg)
	if err != nil {
		logger.Warn("GCS client is not available", zap.Error(err))
		return c
	}
	c.bucket = bucket
	c.signer = sig
	return c
}

func (c *Client) CheckAvailability() bool {
	return c.bucket != nil
}

// TestConnection reads the bucket attributes.
func (c *Client) TestConnection(ctx context.Context) objectclient.ConnectionResult {
	if c.bucket == nil {
		return objectclient.ConnectionFailed("GCS client is not available")
	}
	if err := c.bucket.Attrs(ctx); err != nil {
		return objectclient.ConnectionFailed(err.Error())
	}
	return objectclient.ConnectionOK()
}

func (c *Client) TestPermissions(ctx context.Context, testDelete bool) objectclient.PermissionResult {
	if c.bucket == nil {
		return c.Base.TestPermissions(ctx, testDelete)
	}
	return objectclient.RunPermissionChecks(ctx, c, c.PermissionKey(), testDelete)
}

// SupportsPresignedURLs is true when a service account key is configured.
func (c *Client) SupportsPresignedURLs() bool {
	return c.bucket != nil && c.signer != nil
}

func (c *Client) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	if !c.SupportsPresignedURLs() {
		return c.Base.GeneratePresignedURL(ctx, contentHash, headers)
	}

	query := url.Values{}
	disposition, contentType := objectclient.ResponseOverrides(headers)
	if disposition != "" {
		query.Set("response-content-disposition", disposition)
	}
	if contentType != "" {
		query.Set("response-content-type", contentType)
	}

	signed, err := c.bucket.SignedURL(c.Key(contentHash), &storage.SignedURLOptions{
		GoogleAccessID:  c.signer.accessID,
		PrivateKey:      c.signer.privateKey,
		Method:          http.MethodGet,
		Expires:         c.now().Add(c.Config().Expiry()),
		Scheme:          storage.SigningSchemeV4,
		QueryParameters: query,
	})
	if err != nil {
		return "", wrap(err, "failed to sign object url")
	}
	return signed, nil
}

func (c *Client) ProxyRangeRequest(ctx context.Context, file objectclient.File, rng objectclient.Range) ([]byte, error) {
	if c.bucket == nil {
		return nil, objectclient.ErrNotHandled
	}
	if err := rng.Validate(file.Size); err != nil {
		return nil, err
	}
	data, err := c.bucket.Read(ctx, c.Key(file.ContentHash), rng.From, rng.Length)
	if err != nil {
		return nil, wrap(err, "failed to read object range")
	}
	return data, nil
}

func (c *Client) TestRangeRequest(ctx context.Context) bool {
	if c.bucket == nil {
		return false
	}
	return objectclient.ProbeRange(ctx, c, c)
}

func (c *Client) PutObject(ctx context.Context, key string, body []byte) error {
	if c.bucket == nil {
		return errUnavailable
	}
	if err := objectclient.CheckUploadSize(c, int64(len(body))); err != nil {
		return err
	}
	return wrap(c.bucket.Write(ctx, key, body), "failed to write object")
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if c.bucket == nil {
		return nil, errUnavailable
	}
	data, err := c.bucket.Read(ctx, key, 0, -1)
	if err != nil {
		return nil, wrap(err, "failed to read object")
	}
	return data, nil
}

func (c *Client) DeleteObject(ctx context.Context, key string) error {
	if c.bucket == nil {
		return errUnavailable
	}
	return wrap(c.bucket.Delete(ctx, key), "failed to delete object")
}

var (
	_ objectclient.ObjectClient = (*Client)(nil)
	_ objectclient.Prober       = (*Client)(nil)
)
