package handler

import (
	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/domain/project"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projects usecase.ProjectUsecase
	health   usecase.HealthUsecase
}

type projectRequest struct {
	Name        string         `json:"name"`
	ClientName  string         `json:"client_name"`
	ProjectCode string         `json:"project_code"`
	StartDate   dto.Date       `json:"start_date"`
	EndDate     dto.Date       `json:"end_date"`
	Description string         `json:"description"`
	Status      project.Status `json:"status"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Portfolio   string         `json:"portfolio"`
}

func (r projectRequest) input() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        r.Name,
		ClientName:  r.ClientName,
		ProjectCode: r.ProjectCode,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.Time,
		Description: r.Description,
		Status:      r.Status,
		OwnerID:     r.OwnerID,
		Portfolio:   r.Portfolio,
	}
}

func NewProjectHandler(projects usecase.ProjectUsecase, health usecase.HealthUsecase) *ProjectHandler {
	return &ProjectHandler{projects: projects, health: health}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/health", h.Health)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	list, err := h.projects.GetProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.projects.CreateProject(c.Context(), req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Project created", created)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.projects.GetProject(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.projects.UpdateProject(c.Context(), id, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projects.DeleteProject(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) Health(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	asOf, err := queryDate(c, "as_of")
	if err != nil {
		return err
	}

	report, err := h.health.GetProjectHealth(c.Context(), id, asOf)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}
