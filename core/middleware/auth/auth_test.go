package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/palette", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendString("docs") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		target string
		header string
		want   int
	}{
		{"Disabled", Config{}, "/palette", "", fiber.StatusOK},
		{"Missing", Config{ApiKey: "secret"}, "/palette", "", fiber.StatusUnauthorized},
		{"Wrong", Config{ApiKey: "secret"}, "/palette", "nope", fiber.StatusForbidden},
		{"Header", Config{ApiKey: "secret"}, "/palette", "secret", fiber.StatusOK},
		{"Query", Config{ApiKey: "secret"}, "/palette?api_key=secret", "", fiber.StatusOK},
		{"Skipped", Config{ApiKey: "secret", Skip: []string{"/swagger"}}, "/swagger/index.html", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
