// Package memory keeps every repository in process memory. Slices preserve
// insertion order; each store guards its data with a RWMutex and hands out
// copies so callers never share backing arrays with the store.
package memory

import (
	"skillforge/internal/domain/contract"
	"skillforge/internal/repository"
)

func New() repository.Repositories {
	return repository.Repositories{
		Users:       NewUserRepository(),
		Projects:    NewProjectRepository(),
		Roles:       NewRoleRepository(),
		Assignments: NewAssignmentRepository(),
		Contracts: repository.ContractRepositories{
			SOWs:           NewArtifactRepository[contract.SOW](),
			ChangeRequests: NewArtifactRepository[contract.ChangeRequest](),
			Risks:          NewArtifactRepository[contract.Risk](),
			Dependencies:   NewArtifactRepository[contract.Dependency](),
			Documents:      NewArtifactRepository[contract.Document](),
		},
		Groups:     NewGroupRepository(),
		Taxonomy:   NewTaxonomyRepository(),
		Financials: NewFinancialsRepository(),
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
