package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func TestErrorMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/app", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Project not found", nil, nil)
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", nil, errors.New("secret"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("oops")
	})

	status, env := doRequest(t, app, "/app")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Project not found", env.Message)

	status, env = doRequest(t, app, "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)

	status, _ = doRequest(t, app, "/plain")
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, env = doRequest(t, app, "/panic")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, fiber.StatusInternalServerError, env.Status)
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/admin", func(c fiber.Ctx) error {
		c.Locals(CtxIsAdminKey, false)
		return c.Next()
	}, RequireAdmin(), func(c fiber.Ctx) error {
		return c.SendString("{}")
	})

	status, env := doRequest(t, app, "/admin")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Admin access required", env.Message)
}
