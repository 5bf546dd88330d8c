package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h fiber.Handler) (int, Envelope) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func TestCreated(t *testing.T) {
	status, env := get(t, func(c fiber.Ctx) error {
		return Created(c, "Project created", map[string]string{"name": "Apollo"})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, fiber.StatusCreated, env.Status)
	assert.Equal(t, "Project created", env.Message)
	assert.Equal(t, map[string]any{"name": "Apollo"}, env.Data)

	_, env = get(t, func(c fiber.Ctx) error { return Created(c, "", nil) })
	assert.Equal(t, MessageCreated, env.Message)
}

func TestSuccess_DefaultsAndBadStatus(t *testing.T) {
	status, env := get(t, func(c fiber.Ctx) error { return Success(c, fiber.StatusOK, "", nil) })
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, MessageOK, env.Message)

	status, env = get(t, func(c fiber.Ctx) error { return Success(c, 42, "", nil) })
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, MessageInternalServerError, env.Message)
}

func TestError_HidesServerErrorDetail(t *testing.T) {
	status, env := get(t, func(c fiber.Ctx) error {
		return Error(c, fiber.StatusBadGateway, "upstream said no", map[string]string{"dsn": "secret"})
	})
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, MessageInternalServerError, env.Message)
	assert.Nil(t, env.Data)

	status, env = get(t, func(c fiber.Ctx) error { return Error(c, fiber.StatusConflict, "", nil) })
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, MessageConflict, env.Message)
}
