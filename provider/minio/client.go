package minio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"objectfs/core/errs"
	"objectfs/core/objectclient"
	"objectfs/core/storage"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errUnavailable = errs.New(errs.KindUnavailableDependency, "MinIO client is not available")

// Client is the object client for MinIO servers.
type Client struct {
	objectclient.Base
	store  storage.Client
	bucket string
	logger *zap.Logger
}

// New creates a MinIO client. An invalid endpoint leaves it unavailable.
func New(cfg objectclient.Config, minioCfg storage.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := storage.NewClient(minioCfg)
	if err != nil {
		logger.Warn("MinIO client is not available", zap.Error(err))
	}
	return NewWithStore(cfg, store, minioCfg.Bucket, logger)
}

// NewWithStore creates a client on top of an existing storage client.
func NewWithStore(cfg objectclient.Config, store storage.Client, bucket string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{Base: objectclient.NewBase(cfg), store: store, bucket: bucket, logger: logger}
}

func (c *Client) CheckAvailability() bool {
	return c.store != nil
}

// TestConnection checks that the bucket exists.
func (c *Client) TestConnection(ctx context.Context) objectclient.ConnectionResult {
	if c.store == nil {
		return objectclient.ConnectionFailed("MinIO client is not available")
	}
	exists, err := c.store.BucketExists(ctx, c.bucket)
	if err != nil {
		return objectclient.ConnectionFailed(err.Error())
	}
	if !exists {
		return objectclient.ConnectionFailed("bucket " + c.bucket + " does not exist")
	}
	return objectclient.ConnectionOK()
}

func (c *Client) TestPermissions(ctx context.Context, testDelete bool) objectclient.PermissionResult {
	if c.store == nil {
		return c.Base.TestPermissions(ctx, testDelete)
	}
	return objectclient.RunPermissionChecks(ctx, c, c.PermissionKey(), testDelete)
}

func (c *Client) SupportsPresignedURLs() bool {
	return c.store != nil
}

func (c *Client) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	if c.store == nil {
		return c.Base.GeneratePresignedURL(ctx, contentHash, headers)
	}

	params := url.Values{}
	disposition, contentType := objectclient.ResponseOverrides(headers)
	if disposition != "" {
		params.Set("response-content-disposition", disposition)
	}
	if contentType != "" {
		params.Set("response-content-type", contentType)
	}

	u, err := c.store.PresignedGetObject(ctx, c.bucket, c.Key(contentHash), c.Config().Expiry(), params)
	if err != nil {
		return "", wrap(err, "failed to presign object")
	}
	return u.String(), nil
}

func (c *Client) ProxyRangeRequest(ctx context.Context, file objectclient.File, rng objectclient.Range) ([]byte, error) {
	if c.store == nil {
		return nil, objectclient.ErrNotHandled
	}
	if err := rng.Validate(file.Size); err != nil {
		return nil, err
	}

	opts := miniogo.GetObjectOptions{}
	if err := opts.SetRange(rng.From, rng.To); err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, "invalid range", err)
	}
	return c.read(ctx, c.Key(file.ContentHash), opts)
}

func (c *Client) TestRangeRequest(ctx context.Context) bool {
	if c.store == nil {
		return false
	}
	return objectclient.ProbeRange(ctx, c, c)
}

func (c *Client) PutObject(ctx context.Context, key string, body []byte) error {
	if c.store == nil {
		return errUnavailable
	}
	if err := objectclient.CheckUploadSize(c, int64(len(body))); err != nil {
		return err
	}
	_, err := c.store.PutObject(ctx, c.bucket, key, bytes.NewReader(body), int64(len(body)), miniogo.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	return wrap(err, "failed to put object")
}

func (c *Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if c.store == nil {
		return nil, errUnavailable
	}
	return c.read(ctx, key, miniogo.GetObjectOptions{})
}

func (c *Client) DeleteObject(ctx context.Context, key string) error {
	if c.store == nil {
		return errUnavailable
	}
	return wrap(c.store.RemoveObject(ctx, c.bucket, key, miniogo.RemoveObjectOptions{}), "failed to remove object")
}

// read downloads an object. MinIO reports most errors on the first read
// rather than on GetObject.
func (c *Client) read(ctx context.Context, key string, opts miniogo.GetObjectOptions) ([]byte, error) {
	obj, err := c.store.GetObject(ctx, c.bucket, key, opts)
	if err != nil {
		return nil, wrap(err, "failed to get object")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrap(err, "failed to read object")
	}
	return data, nil
}

// classify maps a MinIO error to an errs kind.
func classify(err error) errs.Kind {
	if kind := errs.KindOf(err); kind != errs.KindUnknown {
		return kind
	}
	resp := miniogo.ToErrorResponse(err)
	switch resp.Code {
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return errs.KindPermissionDenied
	case "NoSuchKey", "NoSuchBucket":
		return errs.KindNotFound
	case "InvalidRange":
		return errs.KindInvalidInput
	}
	switch resp.StatusCode {
	case http.StatusForbidden:
		return errs.KindPermissionDenied
	case http.StatusNotFound:
		return errs.KindNotFound
	}
	return errs.KindConnectionFailed
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errs.Wrap(classify(err), msg, errors.WithStack(err))
}

var (
	_ objectclient.ObjectClient = (*Client)(nil)
	_ objectclient.Prober       = (*Client)(nil)
)
