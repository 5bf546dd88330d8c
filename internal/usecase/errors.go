package usecase

import (
	"errors"
	"fmt"

	"skillforge/internal/domain/group"

	"go.uber.org/zap"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrUserNotFound            = errors.New("user not found")
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrTagNotFound           = errors.New("tag not found")
	ErrTagAlreadyExists      = errors.New("tag already exists")

	ErrProjectNotFound    = errors.New("project not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrArtifactNotFound   = errors.New("artifact not found")

	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupCycle         = group.ErrGroupCycle
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user already in group")

	ErrPaybandNotFound    = errors.New("payband not found")
	ErrRateCardNotFound   = errors.New("rate card not found")
	ErrFinancialsNotFound = errors.New("financials not found")
)

// invalid wraps ErrInvalidInput with a field-level reason that handlers pass
// back to the client.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// internal logs the cause and hides it behind ErrInternal.
func internal(logger *zap.Logger, op string, err error) error {
	logger.Error(op+" failed", zap.Error(err))
	return ErrInternal
}
