package azure

import (
	"context"

	"objectfs/core/errs"
	"objectfs/core/objectclient"

	"go.uber.org/zap"
)

var errUnavailable = errs.New(errs.KindUnavailableDependency, "Azure client is not available")

// Client is the object client for Azure Blob Storage.
type Client struct {
	objectclient.Base
	container containerAPI
	presign   bool
	logger    *zap.Logger
}

// New creates an Azure client. Missing settings leave the client
// unavailable.
func New(cfg objectclient.Config, azCfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{Base: objectclient.NewBase(cfg), logger: logger}

	api, err := newSDKContainer(azCfg)
	if err != nil {
		logger.Warn("Azure client is not available", zap.Error(err))
		return c
	}
	c.container = api
	c.presign = api.cred != nil
	return c
}

func (c *Client) CheckAvailability() bool {
	return c.container != nil
}

// TestConnection reads the container properties.
func (c *Client) TestConnection(ctx context.Context) objectclient.ConnectionResult {
	if c.container == nil {
		return objectclient.ConnectionFailed("Azure client is not available")
	}
	if err := c.container.GetProperties(ctx); err != nil {
		return objectclient.ConnectionFailed(err.Error())
	}
	return objectclient.ConnectionOK()
}

func (c *Client) TestPermissions(ctx context.Context, testDelete bool) objectclient.PermissionResult {
	if c.container == nil {
		return c.Base.TestPermissions(ctx, testDelete)
	}
	return objectclient.RunPermissionChecks(ctx, c, c.PermissionKey(), testDelete)
}

// SupportsPresignedURLs is true when the account key is configured.
func (c *Client) SupportsPresignedURLs() bool {
	return c.container != nil && c.presign
}

func (c *Client) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	if !c.SupportsPresignedURLs() {
		return c.Base.GeneratePresignedURL(ctx, contentHash, headers)
	}
	disposition, contentType := objectclient.ResponseOverrides(headers)
	url, err := c.container.SignedURL(c.Key(contentHash), c.Config().Expiry(), disposition, contentType)
	if err != nil {
		return "", wrap(err, "failed to presign blob")
	}
	return url, nil
}

func (c *Client) ProxyRangeRequest(ctx context.Context, file objectclient.File, rng objectclient.Range) ([]byte, error) {
	if c.container == nil {
		return nil, objectclient.ErrNotHandled
	}
	if err := rng.Validate(file.Size); err != nil {
		return nil, err
	}
	data, err := c.container.Download(ctx, c.Key(file.ContentHash), rng.From, rng.Length)
	if err != nil {
		return nil, wrap(err, "failed to download blob range")
	}
	return data, nil
}

func (c *Client) TestRangeRequest(ctx context.Context) bool {
	if c.container == nil {
		return false
	}
	return objectclient.ProbeRange(ctx, c, c)
}

func (c *Client) PutObject(ctx context.Context, key string, body []byte) error {
	if c.container == nil {
		return errUnavailable
	}
	if err := objectclient.CheckUploadSize(c, int64(len(body))); err != nil {
		return err
	}
	return wrap(c.container.Upload(ctx, key, body), "failed to upload blob")
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if c.container == nil {
		return nil, errUnavailable
	}
	data, err := c.container.Download(ctx, key, 0, 0)
	if err != nil {
		return nil, wrap(err, "failed to download blob")
	}
	return data, nil
}

func (c *Client) DeleteObject(ctx context.Context, key string) error {
	if c.container == nil {
		return errUnavailable
	}
	return wrap(c.container.Delete(ctx, key), "failed to delete blob")
}

var (
	_ objectclient.ObjectClient = (*Client)(nil)
	_ objectclient.Prober       = (*Client)(nil)
)
