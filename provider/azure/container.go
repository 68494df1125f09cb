package azure

import (
	"context"
	"io"
	"net/http"
	"time"

	"objectfs/core/errs"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/pkg/errors"
)

// containerAPI is the blob container surface used by Client.
type containerAPI interface {
	GetProperties(ctx context.Context) error
	Upload(ctx context.Context, blobName string, data []byte) error
	Download(ctx context.Context, blobName string, offset, count int64) ([]byte, error)
	Delete(ctx context.Context, blobName string) error
	// SignedURL returns a read-only SAS URL, or an unsupported error when
	// the container is not accessed with a shared key.
	SignedURL(blobName string, expiry time.Duration, disposition, contentType string) (string, error)
}

type sdkContainer struct {
	client *container.Client
	cred   *azblob.SharedKeyCredential
	name   string
}

func newSDKContainer(cfg Config) (*sdkContainer, error) {
	if cfg.AccountName == "" || cfg.Container == "" {
		return nil, errs.New(errs.KindConfiguration, "azure account name and container are required")
	}

	opts := &azblob.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: cfg.MaxRetries},
		},
	}

	if cfg.AccountKey != "" {
		cred, err := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create storage account access key credential")
		}
		client, err := azblob.NewClientWithSharedKeyCredential(cfg.ServiceURL(), cred, opts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create blob client with the storage account access key")
		}
		return &sdkContainer{client: client.ServiceClient().NewContainerClient(cfg.Container), cred: cred, name: cfg.Container}, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default azure credential")
	}
	client, err := azblob.NewClient(cfg.ServiceURL(), cred, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blob client with the Azure AD credential")
	}
	return &sdkContainer{client: client.ServiceClient().NewContainerClient(cfg.Container), name: cfg.Container}, nil
}

func (s *sdkContainer) GetProperties(ctx context.Context) error {
	_, err := s.client.GetProperties(ctx, nil)
	return err
}

func (s *sdkContainer) Upload(ctx context.Context, blobName string, data []byte) error {
	_, err := s.client.NewBlockBlobClient(blobName).UploadBuffer(ctx, data, nil)
	return err
}

func (s *sdkContainer) Download(ctx context.Context, blobName string, offset, count int64) ([]byte, error) {
	resp, err := s.client.NewBlobClient(blobName).DownloadStream(ctx, &blob.DownloadStreamOptions{
		Range: blob.HTTPRange{Offset: offset, Count: count},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (s *sdkContainer) Delete(ctx context.Context, blobName string) error {
	_, err := s.client.NewBlobClient(blobName).Delete(ctx, nil)
	return err
}

func (s *sdkContainer) SignedURL(blobName string, expiry time.Duration, disposition, contentType string) (string, error) {
	if s.cred == nil {
		return "", errs.New(errs.KindUnsupportedOperation, "pre-signed URLs need a storage account key")
	}

	query, err := sas.BlobSignatureValues{
		Protocol:           sas.ProtocolHTTPS,
		ExpiryTime:         time.Now().UTC().Add(expiry),
		Permissions:        (&sas.BlobPermissions{Read: true}).String(),
		ContainerName:      s.name,
		BlobName:           blobName,
		ContentDisposition: disposition,
		ContentType:        contentType,
	}.SignWithSharedKey(s.cred)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign blob url")
	}
	return s.client.NewBlobClient(blobName).URL() + "?" + query.Encode(), nil
}

// classify maps an SDK error to an errs kind.
func classify(err error) errs.Kind {
	if errs.KindOf(err) != errs.KindUnknown {
		return errs.KindOf(err)
	}
	if bloberror.HasCode(err, bloberror.AuthorizationPermissionMismatch, bloberror.AuthorizationFailure, bloberror.InsufficientAccountPermissions) {
		return errs.KindPermissionDenied
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound, bloberror.ResourceNotFound) {
		return errs.KindNotFound
	}
	if bloberror.HasCode(err, bloberror.InvalidRange) {
		return errs.KindInvalidInput
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusForbidden:
			return errs.KindPermissionDenied
		case http.StatusNotFound:
			return errs.KindNotFound
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
