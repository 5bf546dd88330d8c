package repository

import (
	"context"
	"errors"

	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/group"
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/taxonomy"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	// Update replaces the profile fields. Skills and the password hash are
	// left untouched.
	Update(ctx context.Context, u user.User) (user.User, error)

	AddSkill(ctx context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error)
	UpdateSkill(ctx context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	Create(ctx context.Context, p project.Project) (project.Project, error)
	Update(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Role, error)
	Create(ctx context.Context, r project.Role) (project.Role, error)
	Update(ctx context.Context, r project.Role) (project.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

type AssignmentRepository interface {
	List(ctx context.Context) ([]project.Assignment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.Assignment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Assignment, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Assignment, error)
	Create(ctx context.Context, a project.Assignment) (project.Assignment, error)
	Update(ctx context.Context, a project.Assignment) (project.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRole(ctx context.Context, roleID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// ArtifactRepository stores one kind of project contract artifact.
type ArtifactRepository[T contract.Artifact[T]] interface {
	List(ctx context.Context, projectID uuid.UUID) ([]T, error)
	Get(ctx context.Context, projectID uuid.UUID, id uuid.UUID) (T, error)
	Create(ctx context.Context, a T) (T, error)
	Update(ctx context.Context, a T) (T, error)
	Delete(ctx context.Context, projectID uuid.UUID, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

type ContractRepositories struct {
	SOWs           ArtifactRepository[contract.SOW]
	ChangeRequests ArtifactRepository[contract.ChangeRequest]
	Risks          ArtifactRepository[contract.Risk]
	Dependencies   ArtifactRepository[contract.Dependency]
	Documents      ArtifactRepository[contract.Document]
}

type GroupRepository interface {
	List(ctx context.Context) ([]group.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (group.Group, error)
	Create(ctx context.Context, g group.Group) (group.Group, error)
	Update(ctx context.Context, g group.Group) (group.Group, error)
	// Delete removes the group and all of its memberships.
	Delete(ctx context.Context, id uuid.UUID) error

	ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]group.Membership, error)
	ListMembershipsByGroup(ctx context.Context, groupID uuid.UUID) ([]group.Membership, error)
	AddMember(ctx context.Context, m group.Membership) (group.Membership, error)
	RemoveMember(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error
	// SetPrimary marks one membership as the user's primary group and clears
	// the flag on all others.
	SetPrimary(ctx context.Context, userID uuid.UUID, groupID uuid.UUID, primary bool) (group.Membership, error)
}

type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]taxonomy.Category, error)
	GetCategory(ctx context.Context, name string) (taxonomy.Category, error)
	CreateCategory(ctx context.Context, c taxonomy.Category) (taxonomy.Category, error)
	// UpdateCategory replaces the category stored under name. The
	// replacement may carry a new name.
	UpdateCategory(ctx context.Context, name string, c taxonomy.Category) (taxonomy.Category, error)
	DeleteCategory(ctx context.Context, name string) error

	ListTags(ctx context.Context) ([]skill.Tag, error)
	CreateTag(ctx context.Context, t skill.Tag) (skill.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type FinancialsRepository interface {
	ListPaybands(ctx context.Context) ([]user.Payband, error)
	CreatePayband(ctx context.Context, p user.Payband) (user.Payband, error)
	ListRateCards(ctx context.Context) ([]user.RateCard, error)
	CreateRateCard(ctx context.Context, rc user.RateCard) (user.RateCard, error)
	GetFinancials(ctx context.Context, userID uuid.UUID) (user.Financials, error)
	UpsertFinancials(ctx context.Context, f user.Financials) (user.Financials, error)
}

// Repositories bundles every store the service depends on. Both the
// in-memory and the Postgres backends produce one.
type Repositories struct {
	Users       UserRepository
	Projects    ProjectRepository
	Roles       RoleRepository
	Assignments AssignmentRepository
	Contracts   ContractRepositories
	Groups      GroupRepository
	Taxonomy    TaxonomyRepository
	Financials  FinancialsRepository
}
