package auth_test

import (
	"net/http/httptest"
	"testing"

	"objectfs/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"Disabled", "", "", 200},
		{"ValidKey", "secret", "secret", 200},
		{"MissingKey", "secret", "", 401},
		{"WrongKey", "secret", "guess", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := newApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
