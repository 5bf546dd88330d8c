package handler

import (
	"strconv"
	"strings"
	"time"

	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func pathUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func queryDate(c fiber.Ctx, name string) (time.Time, error) {
	t, err := dto.ParseDate(strings.TrimSpace(c.Query(name)))
	if err != nil {
		return time.Time{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, fiber.Map{"error": err.Error()}, err)
	}
	return t, nil
}

func queryInt(c fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return n, nil
}

func queryFloat(c fiber.Ctx, name string) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return f, nil
}

func currentUser(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func actor(c fiber.Ctx) (usecase.Actor, error) {
	id, err := currentUser(c)
	if err != nil {
		return usecase.Actor{}, err
	}
	return usecase.Actor{UserID: id, IsAdmin: middleware.IsAdmin(c)}, nil
}

// optionalUUID parses a nullable id from a request body. Empty means unset.
func optionalUUID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+field, nil, err)
	}
	return &id, nil
}
