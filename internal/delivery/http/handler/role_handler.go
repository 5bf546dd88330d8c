package handler

import (
	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/domain/project"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	roles    usecase.RoleUsecase
	staffing usecase.StaffingUsecase
}

type roleRequest struct {
	Title                string                     `json:"title"`
	Count                int                        `json:"count"`
	RequiredSkills       []project.SkillRequirement `json:"required_skills"`
	SoftSkillPreferences []string                   `json:"soft_skill_preferences"`
	Description          string                     `json:"description"`
}

func (r roleRequest) input() usecase.RoleInput {
	return usecase.RoleInput{
		Title:                r.Title,
		Count:                r.Count,
		RequiredSkills:       r.RequiredSkills,
		SoftSkillPreferences: r.SoftSkillPreferences,
		Description:          r.Description,
	}
}

func NewRoleHandler(roles usecase.RoleUsecase, staffing usecase.StaffingUsecase) *RoleHandler {
	return &RoleHandler{roles: roles, staffing: staffing}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/projects/:id/roles", h.List)
	r.Post("/projects/:id/roles", h.Create)
	r.Put("/roles/:id", h.Update)
	r.Delete("/roles/:id", h.Delete)
	r.Get("/roles/:id/candidates", h.Candidates)
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	roles, err := h.roles.GetProjectRoles(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, roles)
}

func (h *RoleHandler) Create(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.roles.CreateProjectRole(c.Context(), projectID, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Role created", created)
}

func (h *RoleHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.roles.UpdateProjectRole(c.Context(), id, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *RoleHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.roles.DeleteProjectRole(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Role deleted", nil)
}

// Candidates ranks users for the role. min_score and limit are optional.
func (h *RoleHandler) Candidates(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	minScore, err := queryFloat(c, "min_score")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	cs, err := h.staffing.SearchUsersForRole(c.Context(), id, usecase.SearchParams{MinScore: minScore, Limit: limit})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateListResponse(id, cs))
}
