package seeder

import (
	"context"
	"time"

	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, repos repository.Repositories) error
}

// namespace keeps demo ids stable across runs and backends, so records can
// reference each other by their short demo key.
var namespace = uuid.MustParse("6f1c2a4e-5b0d-4c1e-9a57-3d2b8e0f7c61")

// ID returns the stable UUID for a demo key such as "user-1" or "proj-2".
func ID(key string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(key))
}

func idPtr(key string) *uuid.UUID {
	id := ID(key)
	return &id
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
