package handler

import (
	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/domain/project"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type assignmentRequest struct {
	UserID            uuid.UUID                `json:"user_id"`
	RoleID            uuid.UUID                `json:"role_id"`
	AllocationPercent int                      `json:"allocation_percent"`
	StartDate         dto.Date                 `json:"start_date"`
	EndDate           dto.Date                 `json:"end_date"`
	Status            project.AssignmentStatus `json:"status"`
	BookingType       project.BookingType      `json:"booking_type"`
	Notes             string                   `json:"notes"`
}

func (r assignmentRequest) input() usecase.AssignmentInput {
	return usecase.AssignmentInput{
		UserID:            r.UserID,
		RoleID:            r.RoleID,
		AllocationPercent: r.AllocationPercent,
		StartDate:         r.StartDate.Time,
		EndDate:           r.EndDate.Time,
		Status:            r.Status,
		BookingType:       r.BookingType,
		Notes:             r.Notes,
	}
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/projects/:id/assignments", h.List)
	r.Post("/projects/:id/assignments", h.Create)
	r.Put("/assignments/:id", h.Update)
	r.Delete("/assignments/:id", h.Delete)
}

func (h *AssignmentHandler) List(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	list, err := h.uc.GetProjectAssignments(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req assignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.uc.CreateAssignment(c.Context(), projectID, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Assignment created", created)
}

func (h *AssignmentHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req assignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.uc.UpdateAssignment(c.Context(), id, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *AssignmentHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAssignment(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assignment deleted", nil)
}
