package mocks

import (
	"context"

	"objectfs/core/objectclient"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of objectclient.ObjectClient
type Client struct {
	mock.Mock
}

func (m *Client) Config() objectclient.Config {
	args := m.Called()
	if cfg, ok := args.Get(0).(objectclient.Config); ok {
		return cfg
	}
	return objectclient.Config{}
}

func (m *Client) CheckAvailability() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Client) TestConnection(ctx context.Context) objectclient.ConnectionResult {
	args := m.Called(ctx)
	return args.Get(0).(objectclient.ConnectionResult)
}

func (m *Client) TestPermissions(ctx context.Context, testDelete bool) objectclient.PermissionResult {
	args := m.Called(ctx, testDelete)
	return args.Get(0).(objectclient.PermissionResult)
}

func (m *Client) SupportsPresignedURLs() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Client) GeneratePresignedURL(ctx context.Context, contentHash string, headers map[string]string) (string, error) {
	args := m.Called(ctx, contentHash, headers)
	return args.String(0), args.Error(1)
}

func (m *Client) MaxUploadSize() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *Client) ProxyRangeRequest(ctx context.Context, file objectclient.File, rng objectclient.Range) ([]byte, error) {
	args := m.Called(ctx, file, rng)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) TestRangeRequest(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

var _ objectclient.ObjectClient = (*Client)(nil)
