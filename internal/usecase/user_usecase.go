package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/export"
	"skillforge/internal/logging"
	"skillforge/internal/repository"
	ucauth "skillforge/internal/usecase/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor is the authenticated caller of a usecase.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	AvatarURL  string
	Tenure     string
	Title      string
	Location   string
	Status     user.Status
	IsAdmin    bool
}

// UpdateUserInput carries a partial profile update. Nil fields are left as
// they are.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Role       *string
	Department *string
	AvatarURL  *string
	Tenure     *string
	Title      *string
	Location   *string
	Status     *user.Status
	IsAdmin    *bool
}

type AddSkillInput struct {
	Name              string
	Category          string
	Subcategory       string
	Proficiency       int
	YearsOfExperience *int
	CertificationURL  string
	Notes             string
	Tags              []uuid.UUID
}

type UpdateSkillInput struct {
	Proficiency       *int
	YearsOfExperience *int
	CertificationURL  *string
	Notes             *string
	Tags              []uuid.UUID
}

type RosterExport struct {
	FileName string
	Content  []byte
}

type UserUsecase interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	GetAllUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (user.User, error)
	UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (user.User, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, in UpdateSkillInput) (skill.Skill, error)
	VerifySkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.Skill, error)
	ExportRosterCSV(ctx context.Context) (RosterExport, error)
}

type Users struct {
	users  repository.UserRepository
	cache  SearchCache
	logger *zap.Logger
	now    func() time.Time
}

func NewUserUsecase(users repository.UserRepository, cache SearchCache, logger *zap.Logger) *Users {
	return &Users{users: users, cache: cache, logger: logging.OrNop(logger), now: time.Now}
}

func (u *Users) GetUserProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.GetUserByID(ctx, userID)
}

func (u *Users) GetAllUsers(ctx context.Context) ([]user.User, error) {
	list, err := u.users.List(ctx)
	if err != nil {
		return nil, internal(u.logger, "list users", err)
	}
	for i := range list {
		list[i] = ucauth.Sanitize(list[i])
	}
	return list, nil
}

func (u *Users) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, internal(u.logger, "get user", err)
	}
	return ucauth.Sanitize(usr), nil
}

func (u *Users) CreateUser(ctx context.Context, in CreateUserInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return user.User{}, invalid("name is required")
	}
	email := ucauth.NormalizeEmail(in.Email)
	if !validEmail(email) {
		return user.User{}, invalid("email is invalid")
	}
	status := in.Status
	if status == "" {
		status = user.StatusActive
	}
	if !status.Valid() {
		return user.User{}, invalid("unknown status %q", status)
	}
	hash, err := ucauth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidPassword) {
			return user.User{}, invalid("%v", err)
		}
		return user.User{}, internal(u.logger, "hash password", err)
	}

	now := u.now().UTC()
	created, err := u.users.Create(ctx, user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         strings.TrimSpace(in.Role),
		Department:   strings.TrimSpace(in.Department),
		AvatarURL:    strings.TrimSpace(in.AvatarURL),
		Tenure:       strings.TrimSpace(in.Tenure),
		Title:        strings.TrimSpace(in.Title),
		Location:     strings.TrimSpace(in.Location),
		Status:       status,
		IsAdmin:      in.IsAdmin,
		Skills:       []skill.Skill{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, internal(u.logger, "create user", err)
	}

	invalidateStaffing(ctx, u.cache, u.logger)
	u.logger.Info("user created", zap.String("user_id", created.ID.String()))
	return ucauth.Sanitize(created), nil
}

func (u *Users) UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	if !actor.IsAdmin && actor.UserID != id {
		return user.User{}, ErrForbidden
	}
	if !actor.IsAdmin && (in.IsAdmin != nil || in.Status != nil) {
		return user.User{}, ErrForbidden
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, internal(u.logger, "get user", err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, invalid("name must not be empty")
		}
		usr.Name = name
	}
	if in.Email != nil {
		email := ucauth.NormalizeEmail(*in.Email)
		if !validEmail(email) {
			return user.User{}, invalid("email is invalid")
		}
		usr.Email = email
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return user.User{}, invalid("unknown status %q", *in.Status)
		}
		usr.Status = *in.Status
	}
	if in.IsAdmin != nil {
		usr.IsAdmin = *in.IsAdmin
	}
	setTrimmed(&usr.Role, in.Role)
	setTrimmed(&usr.Department, in.Department)
	setTrimmed(&usr.AvatarURL, in.AvatarURL)
	setTrimmed(&usr.Tenure, in.Tenure)
	setTrimmed(&usr.Title, in.Title)
	setTrimmed(&usr.Location, in.Location)
	usr.UpdatedAt = u.now().UTC()

	updated, err := u.users.Update(ctx, usr)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return user.User{}, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, internal(u.logger, "update user", err)
	}

	invalidateStaffing(ctx, u.cache, u.logger)
	return ucauth.Sanitize(updated), nil
}

func (u *Users) AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (skill.Skill, error) {
	s := skill.Skill{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(in.Name),
		Category:          strings.TrimSpace(in.Category),
		Subcategory:       strings.TrimSpace(in.Subcategory),
		Proficiency:       skill.ProficiencyLevel(in.Proficiency),
		Verified:          false,
		YearsOfExperience: in.YearsOfExperience,
		CertificationURL:  strings.TrimSpace(in.CertificationURL),
		Notes:             strings.TrimSpace(in.Notes),
		Tags:              in.Tags,
	}
	if s.Name == "" || s.Category == "" || s.Subcategory == "" {
		return skill.Skill{}, invalid("name, category and subcategory are required")
	}
	if !s.Proficiency.Valid() {
		return skill.Skill{}, ErrInvalidProficiencyLevel
	}
	if s.YearsOfExperience != nil && *s.YearsOfExperience < 0 {
		return skill.Skill{}, invalid("years_of_experience must not be negative")
	}
	if s.Tags == nil {
		s.Tags = []uuid.UUID{}
	}

	created, err := u.users.AddSkill(ctx, userID, s)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return skill.Skill{}, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return skill.Skill{}, ErrSkillAlreadyExists
		}
		return skill.Skill{}, internal(u.logger, "add skill", err)
	}

	invalidateStaffing(ctx, u.cache, u.logger)
	return created, nil
}

// UpdateSkill edits a skill in place. Changing the proficiency clears the
// verification flag so an admin has to confirm the new level.
func (u *Users) UpdateSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, in UpdateSkillInput) (skill.Skill, error) {
	current, err := u.findSkill(ctx, userID, skillID)
	if err != nil {
		return skill.Skill{}, err
	}

	if in.Proficiency != nil {
		level := skill.ProficiencyLevel(*in.Proficiency)
		if !level.Valid() {
			return skill.Skill{}, ErrInvalidProficiencyLevel
		}
		if level != current.Proficiency {
			current.Proficiency = level
			current.Verified = false
		}
	}
	if in.YearsOfExperience != nil {
		if *in.YearsOfExperience < 0 {
			return skill.Skill{}, invalid("years_of_experience must not be negative")
		}
		years := *in.YearsOfExperience
		current.YearsOfExperience = &years
	}
	setTrimmed(&current.CertificationURL, in.CertificationURL)
	setTrimmed(&current.Notes, in.Notes)
	if in.Tags != nil {
		current.Tags = in.Tags
	}

	return u.saveSkill(ctx, userID, current)
}

func (u *Users) VerifySkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.Skill, error) {
	current, err := u.findSkill(ctx, userID, skillID)
	if err != nil {
		return skill.Skill{}, err
	}
	current.Verified = true
	saved, err := u.saveSkill(ctx, userID, current)
	if err != nil {
		return skill.Skill{}, err
	}
	u.logger.Info("skill verified", zap.String("user_id", userID.String()), zap.String("skill", saved.Name))
	return saved, nil
}

func (u *Users) ExportRosterCSV(ctx context.Context) (RosterExport, error) {
	list, err := u.users.List(ctx)
	if err != nil {
		return RosterExport{}, internal(u.logger, "export roster", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return RosterExport{
		FileName: export.RosterFileName(u.now().UTC()),
		Content:  export.RosterCSV(list),
	}, nil
}

func (u *Users) findSkill(ctx context.Context, userID, skillID uuid.UUID) (skill.Skill, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return skill.Skill{}, ErrUserNotFound
		}
		return skill.Skill{}, internal(u.logger, "get user", err)
	}
	for _, s := range usr.Skills {
		if s.ID == skillID {
			return s, nil
		}
	}
	return skill.Skill{}, ErrSkillNotFound
}

func (u *Users) saveSkill(ctx context.Context, userID uuid.UUID, s skill.Skill) (skill.Skill, error) {
	saved, err := u.users.UpdateSkill(ctx, userID, s)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, internal(u.logger, "update skill", err)
	}
	invalidateStaffing(ctx, u.cache, u.logger)
	return saved, nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
