package app

import (
	"context"
	"errors"
	"fmt"

	"skillforge/internal/config"
	"skillforge/internal/database"
	"skillforge/internal/database/migration"
	dbpostgres "skillforge/internal/database/postgres"
	"skillforge/internal/database/seeder"
	"skillforge/internal/infrastructure/cache"
	"skillforge/internal/logging"
	"skillforge/internal/pkg/jwt"
	"skillforge/internal/repository"
	"skillforge/internal/repository/memory"
	"skillforge/internal/taxonomy"
	"skillforge/internal/usecase"
	ucauth "skillforge/internal/usecase/auth"
	"skillforge/internal/ws"

	"go.uber.org/zap"
)

type Usecases struct {
	Auth        usecase.AuthUsecase
	Users       usecase.UserUsecase
	Taxonomy    *usecase.Taxonomy
	Projects    usecase.ProjectUsecase
	Roles       usecase.RoleUsecase
	Assignments usecase.AssignmentUsecase
	Staffing    usecase.StaffingUsecase
	Contracts   usecase.Contracts
	Health      usecase.HealthUsecase
	Groups      usecase.GroupUsecase
	Financials  usecase.FinancialsUsecase
}

// Container owns every long-lived dependency of the service.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	JWT      jwt.Service
	Repos    repository.Repositories
	Usecases Usecases
}

// NewContainer picks the storage backend, applies migrations, loads the
// taxonomy and optionally seeds demo data. DB is nil on the in-memory
// backend.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	logger = logging.OrNop(logger)
	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Enabled() {
		db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		if err := (migration.Runner{Logger: logger}).Run(ctx, db.SQLDB()); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		c.Repos = repository.NewPostgres(db)
	} else {
		logger.Info("DB_HOST not set, using in-memory store")
		c.Repos = memory.New()
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)
	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	doc, err := taxonomy.Load(cfg.Taxonomy.File)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	c.Usecases = newUsecases(c.Repos, c.Cache, c.Hub, c.JWT, doc.Synonyms, logger)

	if err := c.Usecases.Taxonomy.Bootstrap(ctx, doc); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("bootstrap taxonomy: %w", err)
	}

	if cfg.Seed.DemoData {
		if err := c.seed(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func newUsecases(repos repository.Repositories, sc usecase.SearchCache, notifier usecase.StaffingNotifier, jwtSvc jwt.Service, synonyms map[string]string, logger *zap.Logger) Usecases {
	return Usecases{
		Auth:        usecase.NewAuthUsecase(repos.Users, jwtSvc, logger),
		Users:       usecase.NewUserUsecase(repos.Users, sc, logger),
		Taxonomy:    usecase.NewTaxonomyUsecase(repos.Taxonomy, synonyms, logger),
		Projects:    usecase.NewProjectUsecase(repos, sc, notifier, logger),
		Roles:       usecase.NewRoleUsecase(repos, sc, notifier, logger),
		Assignments: usecase.NewAssignmentUsecase(repos, sc, notifier, logger),
		Staffing:    usecase.NewStaffingUsecase(repos, sc, logger),
		Contracts:   usecase.NewContractUsecases(repos, logger),
		Health:      usecase.NewHealthUsecase(repos, logger),
		Groups:      usecase.NewGroupUsecase(repos.Groups, repos.Users, logger),
		Financials:  usecase.NewFinancialsUsecase(repos.Financials, repos.Users, logger),
	}
}

func (c *Container) seed(ctx context.Context) error {
	hash, err := ucauth.HashPassword(c.Config.Seed.Password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	r := seeder.Runner{Seeders: seeder.Defaults(hash), Logger: c.Logger}
	if err := r.Run(ctx, c.Repos); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
