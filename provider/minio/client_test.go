package minio_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"objectfs/core/errs"
	"objectfs/core/objectclient"
	"objectfs/core/storage"
	"objectfs/core/storage/mocks"
	"objectfs/provider/minio"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(store *mocks.Client) *minio.Client {
	cfg := objectclient.Config{
		FilesystemClass: objectclient.FilesystemMinIO,
		Provider:        objectclient.FilesystemMinIO,
		PresignedExpiry: 15 * time.Minute,
	}
	return minio.NewWithStore(cfg, store, "files", zap.NewNop())
}

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

var accessDenied = miniogo.ErrorResponse{Code: "AccessDenied", StatusCode: 403}

func TestNew(t *testing.T) {
	c := minio.New(objectclient.Config{}, storage.Config{Endpoint: "localhost:9000", Bucket: "files"}, nil)
	assert.True(t, c.CheckAvailability())

	c = minio.New(objectclient.Config{}, storage.Config{}, nil)
	assert.False(t, c.CheckAvailability())
	assert.False(t, c.SupportsPresignedURLs())
}

func TestUnavailableClientObjectCalls(t *testing.T) {
	ctx := context.Background()
	c := minio.New(objectclient.Config{}, storage.Config{}, nil)

	tests := []struct {
		name string
		call func() error
	}{
		{"PutObject", func() error { return c.PutObject(ctx, "k", []byte("x")) }},
		{"GetObject", func() error { _, err := c.GetObject(ctx, "k"); return err }},
		{"DeleteObject", func() error { return c.DeleteObject(ctx, "k") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() { err = tt.call() })
			assert.True(t, errs.IsUnavailable(err))
		})
	}
}

func TestTestConnection(t *testing.T) {
	t.Run("BucketExists", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("BucketExists", mock.Anything, "files").Return(true, nil)
		assert.True(t, newClient(store).TestConnection(context.Background()).Success)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("BucketExists", mock.Anything, "files").Return(false, nil)
		res := newClient(store).TestConnection(context.Background())
		assert.False(t, res.Success)
		assert.Contains(t, res.Details, "does not exist")
	})

	t.Run("Unreachable", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("BucketExists", mock.Anything, "files").Return(false, errors.New("dial tcp: connection refused"))
		res := newClient(store).TestConnection(context.Background())
		assert.Equal(t, "dial tcp: connection refused", res.Details)
	})
}

func TestTestPermissions(t *testing.T) {
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "files", objectclient.PermissionCheckKey, mock.Anything, int64(12), mock.Anything).
		Return(miniogo.UploadInfo{}, nil)
	store.On("GetObject", mock.Anything, "files", objectclient.PermissionCheckKey, mock.Anything).
		Return(body("test content"), nil)
	store.On("RemoveObject", mock.Anything, "files", objectclient.PermissionCheckKey, mock.Anything).
		Return(accessDenied)

	res := newClient(store).TestPermissions(context.Background(), true)

	assert.True(t, res.Success)
	assert.Equal(t, objectclient.MsgPermissionsPassed, res.Messages[0].Text)
	store.AssertExpectations(t)
}

func TestTestPermissions_ReadDenied(t *testing.T) {
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "files", objectclient.PermissionCheckKey, mock.Anything, int64(12), mock.Anything).
		Return(miniogo.UploadInfo{}, nil)
	store.On("GetObject", mock.Anything, "files", objectclient.PermissionCheckKey, mock.Anything).
		Return(nil, accessDenied)

	res := newClient(store).TestPermissions(context.Background(), false)

	assert.False(t, res.Success)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, objectclient.MsgReadFailed, res.Messages[0].Text)
	store.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratePresignedURL(t *testing.T) {
	store := new(mocks.Client)
	signed, _ := url.Parse("http://localhost:9000/files/ab/cd/abcdef?X-Amz-Signature=x")
	store.On("PresignedGetObject", mock.Anything, "files", "ab/cd/abcdef", 15*time.Minute, mock.MatchedBy(func(v url.Values) bool {
		return v.Get("response-content-type") == "image/png"
	})).Return(signed, nil)

	u, err := newClient(store).GeneratePresignedURL(context.Background(), "abcdef", map[string]string{"content-type": "image/png"})

	require.NoError(t, err)
	assert.Equal(t, signed.String(), u)
}

func TestProxyRangeRequest(t *testing.T) {
	store := new(mocks.Client)
	want := miniogo.GetObjectOptions{}
	require.NoError(t, want.SetRange(2, 5))
	store.On("GetObject", mock.Anything, "files", "ab/cd/abcdef", want).Return(body("2345"), nil)

	data, err := newClient(store).ProxyRangeRequest(context.Background(), objectclient.File{ContentHash: "abcdef", Size: 10}, objectclient.NewRange(2, 5))

	require.NoError(t, err)
	assert.Equal(t, []byte("2345"), data)
}

func TestProxyRangeRequest_NotFound(t *testing.T) {
	store := new(mocks.Client)
	store.On("GetObject", mock.Anything, "files", "ab/cd/abcdef", mock.Anything).
		Return(nil, miniogo.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

	_, err := newClient(store).ProxyRangeRequest(context.Background(), objectclient.File{ContentHash: "abcdef"}, objectclient.NewRange(0, 1))
	assert.True(t, errs.IsNotFound(err))
}

func TestUnavailable(t *testing.T) {
	c := minio.NewWithStore(objectclient.Config{}, nil, "files", nil)

	assert.False(t, c.TestConnection(context.Background()).Success)
	assert.False(t, c.TestRangeRequest(context.Background()))

	_, err := c.ProxyRangeRequest(context.Background(), objectclient.File{}, objectclient.NewRange(0, 1))
	assert.True(t, errs.IsNotHandled(err))
}
