package repository

import (
	"database/sql"
	"errors"

	"skillforge/internal/database"
	"skillforge/internal/domain/contract"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// NewPostgres builds the full repository set over one connection pool.
func NewPostgres(db database.DB) Repositories {
	return Repositories{
		Users:       NewPostgresUserRepository(db),
		Projects:    NewPostgresProjectRepository(db),
		Roles:       NewPostgresRoleRepository(db),
		Assignments: NewPostgresAssignmentRepository(db),
		Contracts: ContractRepositories{
			SOWs:           NewPostgresArtifactRepository[contract.SOW](db, contract.KindSOW),
			ChangeRequests: NewPostgresArtifactRepository[contract.ChangeRequest](db, contract.KindChangeRequest),
			Risks:          NewPostgresArtifactRepository[contract.Risk](db, contract.KindRisk),
			Dependencies:   NewPostgresArtifactRepository[contract.Dependency](db, contract.KindDependency),
			Documents:      NewPostgresArtifactRepository[contract.Document](db, contract.KindDocument),
		},
		Groups:     NewPostgresGroupRepository(db),
		Taxonomy:   NewPostgresTaxonomyRepository(db),
		Financials: NewPostgresFinancialsRepository(db),
	}
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows)
}

// mapWriteErr turns unique violations into ErrDuplicate.
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return err
}

func fromNullUUID(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}
