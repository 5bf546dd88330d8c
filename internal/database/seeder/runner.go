package seeder

import (
	"context"
	"fmt"

	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run applies every seeder in order. A store that already has users is
// treated as seeded and left alone.
func (r Runner) Run(ctx context.Context, repos repository.Repositories) error {
	logger := logging.OrNop(r.Logger)
	if repos.Users == nil {
		return fmt.Errorf("nil user repository")
	}

	n, err := repos.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		logger.Info("seed skipped, store not empty", zap.Int("users", n))
		return nil
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, repos); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", zap.String("seeder", s.Name()))
	}
	return nil
}
