package clientcheck

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"objectfs/core/errs"
	"objectfs/core/objectclient"
	"objectfs/core/objectclient/mocks"
	"objectfs/core/readiness"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, cfg objectclient.Config) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	client := new(mocks.Client)
	client.On("Config").Return(cfg).Maybe()
	svc := NewService(client, nil, nil, zap.NewNop())
	require.NoError(t, NewFeature(svc).Load(app))
	return app, client
}

func matching() objectclient.Config {
	return objectclient.Config{
		FilesystemClass: objectclient.FilesystemMinIO,
		Provider:        objectclient.FilesystemMinIO,
		TestDelete:      true,
	}
}

func TestHandleReady(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("CheckAvailability").Return(true)
		client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
		client.On("TestPermissions", mock.Anything, false).Return(objectclient.PermissionResult{Success: true})

		resp, err := app.Test(httptest.NewRequest("GET", "/client/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var d readiness.Decision
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.True(t, d.Ready)
	})

	t.Run("ProviderMismatch", func(t *testing.T) {
		cfg := matching()
		cfg.Provider = objectclient.FilesystemS3
		app, client := setupTestApp(t, cfg)

		resp, err := app.Test(httptest.NewRequest("GET", "/client/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var d readiness.Decision
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.Equal(t, readiness.StepProviderMismatch, d.Step)
		client.AssertNotCalled(t, "TestConnection", mock.Anything)
	})
}

func TestHandleCheck(t *testing.T) {
	t.Run("DefaultDeleteFlag", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
		client.On("TestPermissions", mock.Anything, true).Return(objectclient.PermissionResult{
			Success:  true,
			Messages: []objectclient.Message{{Text: objectclient.MsgPermissionsPassed, Severity: objectclient.SeveritySuccess}},
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/client/check", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Messages []objectclient.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Messages, 2)
		assert.Equal(t, objectclient.MsgPermissionsPassed, body.Messages[1].Text)
	})

	t.Run("DeleteDisabled", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
		client.On("TestPermissions", mock.Anything, false).Return(objectclient.PermissionResult{Success: true})

		resp, err := app.Test(httptest.NewRequest("GET", "/client/check?delete=false", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		client.AssertCalled(t, "TestPermissions", mock.Anything, false)
	})

	t.Run("ConnectionFailed", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionFailed("timeout"))

		resp, err := app.Test(httptest.NewRequest("GET", "/client/check", nil))
		require.NoError(t, err)

		var body map[string][]map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body["messages"], 1)
		assert.Equal(t, "error", body["messages"][0]["severity"])
		client.AssertNotCalled(t, "TestPermissions", mock.Anything, mock.Anything)
	})
}

func TestHandlePresign(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("GeneratePresignedURL", mock.Anything, "abcdef", map[string]string{
			objectclient.HeaderContentType: "image/png",
		}).Return("https://signed.example/abcdef", nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/client/presign/abcdef?content_type=image/png", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "https://signed.example/abcdef", body["url"])
	})

	t.Run("Unsupported", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("GeneratePresignedURL", mock.Anything, "abcdef", mock.Anything).
			Return("", errs.New(errs.KindUnsupportedOperation, "pre-signed URLs not supported"))

		resp, err := app.Test(httptest.NewRequest("GET", "/client/presign/abcdef", nil))
		require.NoError(t, err)
		assert.Equal(t, 501, resp.StatusCode)
	})
}

func TestHandlePresign_Policy(t *testing.T) {
	cfg := matching()
	cfg.PresignedURLsEnabled = true
	cfg.PresignedMinFileSize = 1000

	tests := []struct {
		name string
		size string
		want bool
	}{
		{"AtThreshold", "1000", true},
		{"BelowThreshold", "999", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, client := setupTestApp(t, cfg)
			client.On("SupportsPresignedURLs").Return(true)
			client.On("GeneratePresignedURL", mock.Anything, "abcdef", mock.Anything).Return("https://signed.example/abcdef", nil)

			resp, err := app.Test(httptest.NewRequest("GET", "/client/presign/abcdef?size="+tt.size, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body["should_presign"])
		})
	}

	t.Run("WithoutSize", func(t *testing.T) {
		app, client := setupTestApp(t, cfg)
		client.On("GeneratePresignedURL", mock.Anything, "abcdef", mock.Anything).Return("https://signed.example/abcdef", nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/client/presign/abcdef", nil))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotContains(t, body, "should_presign")
	})

	t.Run("InvalidSize", func(t *testing.T) {
		app, client := setupTestApp(t, cfg)

		resp, err := app.Test(httptest.NewRequest("GET", "/client/presign/abcdef?size=-5", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		client.AssertNotCalled(t, "GeneratePresignedURL", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleRange_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Unavailable", errs.New(errs.KindUnavailableDependency, "client is not available"), 503},
		{"ConnectionFailed", errs.New(errs.KindConnectionFailed, "dial tcp"), 502},
		{"NotFound", errs.New(errs.KindNotFound, "no such key"), 404},
		{"PermissionDenied", errs.New(errs.KindPermissionDenied, "access denied"), 403},
		{"Unknown", errs.New(errs.KindUnknown, "boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, client := setupTestApp(t, matching())
			client.On("ProxyRangeRequest", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest("GET", "/client/range/abcdef", nil)
			req.Header.Set("Range", "bytes=0-1")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHandleRange(t *testing.T) {
	t.Run("PartialContent", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		file := objectclient.File{ContentHash: "abcdef", Size: 100}
		client.On("ProxyRangeRequest", mock.Anything, file, objectclient.NewRange(10, 14)).Return([]byte("hello"), nil)

		req := httptest.NewRequest("GET", "/client/range/abcdef?size=100", nil)
		req.Header.Set("Range", "bytes=10-14")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 206, resp.StatusCode)
		assert.Equal(t, "bytes 10-14/100", resp.Header.Get("Content-Range"))
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("MalformedRange", func(t *testing.T) {
		app, client := setupTestApp(t, matching())

		req := httptest.NewRequest("GET", "/client/range/abcdef", nil)
		req.Header.Set("Range", "bytes=x-y")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 400, resp.StatusCode)
		client.AssertNotCalled(t, "ProxyRangeRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadSize", func(t *testing.T) {
		app, _ := setupTestApp(t, matching())

		req := httptest.NewRequest("GET", "/client/range/abcdef?size=-1", nil)
		req.Header.Set("Range", "bytes=0-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("NotHandled", func(t *testing.T) {
		app, client := setupTestApp(t, matching())
		client.On("ProxyRangeRequest", mock.Anything, mock.Anything, mock.Anything).Return(nil, objectclient.ErrNotHandled)

		req := httptest.NewRequest("GET", "/client/range/abcdef", nil)
		req.Header.Set("Range", "bytes=0-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 501, resp.StatusCode)
	})
}

func TestFeature(t *testing.T) {
	client := new(mocks.Client)
	feature := NewFeature(NewService(client, nil, nil, nil))

	assert.Equal(t, "clientcheck", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.False(t, NewFeature(NewService(nil, nil, nil, nil)).IsEnabled())
}
