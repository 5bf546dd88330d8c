package handler

import (
	"errors"
	"strings"

	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{usecase.ErrUserNotFound, "User not found"},
	{usecase.ErrSkillNotFound, "Skill not found"},
	{usecase.ErrCategoryNotFound, "Category not found"},
	{usecase.ErrTagNotFound, "Tag not found"},
	{usecase.ErrProjectNotFound, "Project not found"},
	{usecase.ErrRoleNotFound, "Role not found"},
	{usecase.ErrAssignmentNotFound, "Assignment not found"},
	{usecase.ErrArtifactNotFound, "Artifact not found"},
	{usecase.ErrGroupNotFound, "Group not found"},
	{usecase.ErrMembershipNotFound, "Membership not found"},
	{usecase.ErrPaybandNotFound, "Payband not found"},
	{usecase.ErrRateCardNotFound, "Rate card not found"},
	{usecase.ErrFinancialsNotFound, "Financials not found"},
}

var conflictMessages = []struct {
	err error
	msg string
}{
	{usecase.ErrEmailAlreadyRegistered, "Email already registered"},
	{usecase.ErrSkillAlreadyExists, "Skill already exists"},
	{usecase.ErrCategoryAlreadyExists, "Category already exists"},
	{usecase.ErrTagAlreadyExists, "Tag already exists"},
	{usecase.ErrAlreadyMember, "User already in group"},
}

// mapUsecaseError turns a usecase sentinel into the matching AppError.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	for _, m := range notFoundMessages {
		if errors.Is(err, m.err) {
			return middleware.NewAppError(fiber.StatusNotFound, m.msg, nil, err)
		}
	}
	for _, m := range conflictMessages {
		if errors.Is(err, m.err) {
			return middleware.NewAppError(fiber.StatusConflict, m.msg, nil, err)
		}
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrGroupCycle):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Group hierarchy would contain a cycle", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// invalidRequest reports a 400 with the validation reason in data.
func invalidRequest(err error) error {
	detail := err.Error()
	if i := strings.Index(detail, ": "); i >= 0 && strings.HasPrefix(detail, usecase.ErrInvalidInput.Error()) {
		detail = detail[i+2:]
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", fiber.Map{"error": detail}, err)
}

func badPayload(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
}
