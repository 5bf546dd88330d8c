package app

import (
	"context"
	"fmt"
	"strings"

	"skillforge/internal/delivery/http/handler"
	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/delivery/http/routes"
	"skillforge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the fiber app around an existing container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and HTTP app and starts the websocket hub.
// The returned cleanup stops the hub and releases storage.
func Bootstrap(ctx context.Context, c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	// Access log wraps the error middleware so it records the final status.
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	uc := c.Usecases
	reg := &routes.Registry{
		Health:      handler.NewHealthHandler(c.Config.App.AppName),
		Auth:        handler.NewAuthHandler(uc.Auth),
		Users:       handler.NewUserHandler(uc.Users, uc.Staffing),
		Taxonomy:    handler.NewTaxonomyHandler(uc.Taxonomy),
		Projects:    handler.NewProjectHandler(uc.Projects, uc.Health),
		Roles:       handler.NewRoleHandler(uc.Roles, uc.Staffing),
		Assignments: handler.NewAssignmentHandler(uc.Assignments),
		Contracts:   handler.NewContractHandler(uc.Contracts),
		Groups:      handler.NewGroupHandler(uc.Groups),
		Financials:  handler.NewFinancialsHandler(uc.Financials),
		WS:          ws.NewHandler(c.Hub, c.Logger),
		AuthMw:      middleware.NewAuthMiddleware(c.JWT),
	}
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
