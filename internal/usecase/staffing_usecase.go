package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"skillforge/internal/domain/matching"
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/user"
	"skillforge/internal/domain/utilization"
	"skillforge/internal/logging"
	"skillforge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidateUser struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Title      string      `json:"title,omitempty"`
	Department string      `json:"department"`
	Location   string      `json:"location,omitempty"`
	AvatarURL  string      `json:"avatar_url,omitempty"`
	Status     user.Status `json:"status"`
}

type Candidate struct {
	User        CandidateUser     `json:"user"`
	Match       matching.Result   `json:"match"`
	Utilization int               `json:"utilization"`
	Level       utilization.Level `json:"utilization_level"`
}

// SearchParams narrows a candidate search. MinScore drops candidates scoring
// below it; Limit caps the result when positive.
type SearchParams struct {
	MinScore float64
	Limit    int
}

type StaffingUsecase interface {
	SearchUsersForRole(ctx context.Context, roleID uuid.UUID, params SearchParams) ([]Candidate, error)
	GetUserUtilization(ctx context.Context, userID uuid.UUID, window utilization.Window) (utilization.Summary, error)
}

type Staffing struct {
	repos  repository.Repositories
	cache  SearchCache
	logger *zap.Logger
}

func NewStaffingUsecase(repos repository.Repositories, cache SearchCache, logger *zap.Logger) *Staffing {
	return &Staffing{repos: repos, cache: cache, logger: logging.OrNop(logger)}
}

// SearchUsersForRole scores every active user against the role. Results are
// ordered by score, then by lower current utilization, then by name. The
// full ordered list is cached per role and filtered on the way out.
func (s *Staffing) SearchUsersForRole(ctx context.Context, roleID uuid.UUID, params SearchParams) ([]Candidate, error) {
	if params.MinScore < 0 || params.MinScore > 100 {
		return nil, invalid("min_score must be between 0 and 100")
	}
	if params.Limit < 0 {
		return nil, invalid("limit must not be negative")
	}

	role, err := getRole(ctx, s.repos.Roles, s.logger, roleID)
	if err != nil {
		return nil, err
	}

	key := staffingCacheKey(roleID)
	var ranked []Candidate
	hit := false
	if s.cache != nil {
		hit, err = s.cache.GetJSON(ctx, key, &ranked)
		if err != nil {
			s.logger.Warn("staffing cache read failed", zap.String("key", key), zap.Error(err))
			hit = false
		}
	}
	if !hit {
		ranked, err = s.rank(ctx, role)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, ranked, 0); err != nil {
				s.logger.Warn("staffing cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	out := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		if c.Match.MatchPercentage < params.MinScore {
			continue
		}
		out = append(out, c)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (s *Staffing) rank(ctx context.Context, role project.Role) ([]Candidate, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "list users", err)
	}
	assignments, err := s.repos.Assignments.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "list assignments", err)
	}
	names, err := s.projectNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(users))
	for _, u := range users {
		if u.Status == user.StatusInactive {
			continue
		}
		util := utilization.Aggregate(u.ID, assignments, names, utilization.Window{})
		out = append(out, Candidate{
			User:        toCandidateUser(u),
			Match:       matching.Calculate(role.RequiredSkills, u.Skills),
			Utilization: util.TotalUtilization,
			Level:       util.Level,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Match.MatchPercentage != b.Match.MatchPercentage {
			return a.Match.MatchPercentage > b.Match.MatchPercentage
		}
		if a.Utilization != b.Utilization {
			return a.Utilization < b.Utilization
		}
		return strings.ToLower(a.User.Name) < strings.ToLower(b.User.Name)
	})
	return out, nil
}

func (s *Staffing) GetUserUtilization(ctx context.Context, userID uuid.UUID, window utilization.Window) (utilization.Summary, error) {
	if !window.Start.IsZero() && !window.End.IsZero() && window.End.Before(window.Start) {
		return utilization.Summary{}, invalid("end before start")
	}
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utilization.Summary{}, ErrUserNotFound
		}
		return utilization.Summary{}, internal(s.logger, "get user", err)
	}
	assignments, err := s.repos.Assignments.ListByUser(ctx, userID)
	if err != nil {
		return utilization.Summary{}, internal(s.logger, "list user assignments", err)
	}
	names, err := s.projectNames(ctx)
	if err != nil {
		return utilization.Summary{}, err
	}
	return utilization.Aggregate(userID, assignments, names, window), nil
}

func (s *Staffing) projectNames(ctx context.Context) (map[uuid.UUID]string, error) {
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "list projects", err)
	}
	names := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}

func toCandidateUser(u user.User) CandidateUser {
	return CandidateUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Title:      u.Title,
		Department: u.Department,
		Location:   u.Location,
		AvatarURL:  u.AvatarURL,
		Status:     u.Status,
	}
}
