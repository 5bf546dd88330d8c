package routes

import (
	"skillforge/internal/delivery/http/handler"
	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every HTTP handler the service mounts.
type Registry struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Taxonomy    *handler.TaxonomyHandler
	Projects    *handler.ProjectHandler
	Roles       *handler.RoleHandler
	Assignments *handler.AssignmentHandler
	Contracts   *handler.ContractHandler
	Groups      *handler.GroupHandler
	Financials  *handler.FinancialsHandler
	WS          *ws.Handler
	AuthMw      *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.Health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.WS == nil {
		return
	}
	app.Get("/ws", r.WS.HandleWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")

	r.Auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.AuthMw.Middleware())
	r.Users.RegisterRoutes(protected)
	r.Taxonomy.RegisterRoutes(protected)
	r.Projects.RegisterRoutes(protected)
	r.Roles.RegisterRoutes(protected)
	r.Assignments.RegisterRoutes(protected)
	r.Contracts.RegisterRoutes(protected)
	r.Groups.RegisterRoutes(protected)
	r.Financials.RegisterRoutes(protected)
}
