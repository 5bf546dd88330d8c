package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func cloneSkill(s skill.Skill) skill.Skill {
	s.Tags = cloneSlice(s.Tags)
	if s.YearsOfExperience != nil {
		y := *s.YearsOfExperience
		s.YearsOfExperience = &y
	}
	return s
}

func cloneUser(u user.User) user.User {
	skills := make([]skill.Skill, 0, len(u.Skills))
	for _, s := range u.Skills {
		skills = append(skills, cloneSkill(s))
	}
	u.Skills = skills
	return u
}

func (r *UserRepository) indexOf(id uuid.UUID) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return user.User{}, repository.ErrNotFound
	}
	return cloneUser(r.users[i]), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return user.User{}, repository.ErrNotFound
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range r.users {
		if existing.ID == u.ID || existing.Email == u.Email {
			return user.User{}, repository.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.Skills == nil {
		u.Skills = []skill.Skill{}
	}
	u = cloneUser(u)
	r.users = append(r.users, u)
	return cloneUser(u), nil
}

func (r *UserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(u.ID)
	if i < 0 {
		return user.User{}, repository.ErrNotFound
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, other := range r.users {
		if other.ID != u.ID && other.Email == u.Email {
			return user.User{}, repository.ErrDuplicate
		}
	}

	cur := r.users[i]
	u.Skills = cur.Skills
	u.PasswordHash = cur.PasswordHash
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.users[i] = u
	return cloneUser(u), nil
}

func (r *UserRepository) AddSkill(_ context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return skill.Skill{}, repository.ErrNotFound
	}
	for _, existing := range r.users[i].Skills {
		if existing.ID == s.ID || existing.SameAs(s.Name, s.Category, s.Subcategory) {
			return skill.Skill{}, repository.ErrDuplicate
		}
	}
	r.users[i].Skills = append(r.users[i].Skills, cloneSkill(s))
	r.users[i].UpdatedAt = time.Now().UTC()
	return cloneSkill(s), nil
}

func (r *UserRepository) UpdateSkill(_ context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID)
	if i < 0 {
		return skill.Skill{}, repository.ErrNotFound
	}
	for j, existing := range r.users[i].Skills {
		if existing.ID != s.ID {
			continue
		}
		r.users[i].Skills[j] = cloneSkill(s)
		r.users[i].UpdatedAt = time.Now().UTC()
		return cloneSkill(s), nil
	}
	return skill.Skill{}, repository.ErrNotFound
}
