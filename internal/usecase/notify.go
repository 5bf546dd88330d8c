package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const staffingCachePattern = "staffing:*"

// SearchCache is the subset of the Redis cache the staffing search uses.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type StaffingNotifier interface {
	NotifyStaffingUpdated(projectID, assignmentID uuid.UUID, action string)
}

func staffingCacheKey(roleID uuid.UUID) string {
	return "staffing:role:" + roleID.String()
}

// invalidateStaffing drops every cached candidate list. Failures are logged
// and otherwise ignored; cached entries also expire on their own.
func invalidateStaffing(ctx context.Context, cache SearchCache, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPattern(ctx, staffingCachePattern); err != nil {
		logger.Warn("staffing cache invalidation failed", zap.Error(err))
	}
}

func notifyStaffing(n StaffingNotifier, projectID, assignmentID uuid.UUID, action string) {
	if n == nil {
		return
	}
	n.NotifyStaffingUpdated(projectID, assignmentID, action)
}
