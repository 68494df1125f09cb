package gcs

import (
	"context"
	"io"
	"net/http"
	"os"

	"objectfs/core/errs"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// bucketAPI wraps the GCS bucket handle so it can be faked in tests.
type bucketAPI interface {
	Attrs(ctx context.Context) error
	Write(ctx context.Context, key string, data []byte) error
	// Read returns length bytes from offset; a negative length reads to the end.
	Read(ctx context.Context, key string, offset, length int64) ([]byte, error)
	Delete(ctx context.Context, key string) error
	SignedURL(key string, opts *storage.SignedURLOptions) (string, error)
}

type sdkBucket struct {
	handle *storage.BucketHandle
}

func (b *sdkBucket) Attrs(ctx context.Context) error {
	_, err := b.handle.Attrs(ctx)
	return err
}

func (b *sdkBucket) Write(ctx context.Context, key string, data []byte) error {
	w := b.handle.Object(key).NewWriter(ctx)

	// The writer is asynchronous: errors are only guaranteed on Close.
	_, writeErr := w.Write(data)
	closeErr := w.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}

func (b *sdkBucket) Read(ctx context.Context, key string, offset, length int64) ([]byte, error) {
	r, err := b.handle.Object(key).NewRangeReader(ctx, offset, length)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (b *sdkBucket) Delete(ctx context.Context, key string) error {
	return b.handle.Object(key).Delete(ctx)
}

func (b *sdkBucket) SignedURL(key string, opts *storage.SignedURLOptions) (string, error) {
	return b.handle.SignedURL(key, opts)
}

// signer holds the service account identity used for signed URLs.
type signer struct {
	accessID   string
	privateKey []byte
}

func newSDKBucket(ctx context.Context, cfg Config) (*sdkBucket, *signer, error) {
	if cfg.Bucket == "" {
		return nil, nil, errs.New(errs.KindConfiguration, "gcs bucket is not configured")
	}

	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	var sig *signer

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	} else if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not read credentials file")
		}
		sig, err = signerFromJSON(data)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(data))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create gcs client")
	}
	return &sdkBucket{handle: client.Bucket(cfg.Bucket)}, sig, nil
}

func signerFromJSON(data []byte) (*signer, error) {
	jwtConfig, err := google.JWTConfigFromJSON(data, storage.ScopeReadWrite)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing credentials file; should be JSON")
	}
	if jwtConfig.Email == "" {
		return nil, errors.New("credentials file does not contain an email")
	}
	if len(jwtConfig.PrivateKey) == 0 {
		return nil, errors.New("credentials file does not contain a private key")
	}
	return &signer{accessID: jwtConfig.Email, privateKey: jwtConfig.PrivateKey}, nil
}

// classify maps an SDK error to an errs kind.
func classify(err error) errs.Kind {
	if kind := errs.KindOf(err); kind != errs.KindUnknown {
		return kind
	}
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return errs.KindNotFound
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errs.KindPermissionDenied
		case http.StatusNotFound:
			return errs.KindNotFound
		case http.StatusRequestedRangeNotSatisfiable:
			return errs.KindInvalidInput
		}
	}
	return errs.KindConnectionFailed
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errs.Wrap(classify(err), msg, errors.WithStack(err))
}
