package handler

import (
	"fmt"

	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/domain/user"
	"skillforge/internal/domain/utilization"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc       usecase.UserUsecase
	staffing usecase.StaffingUsecase
}

type createUserRequest struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	Role       string      `json:"role"`
	Department string      `json:"department"`
	AvatarURL  string      `json:"avatar_url"`
	Tenure     string      `json:"tenure"`
	Title      string      `json:"title"`
	Location   string      `json:"location"`
	Status     user.Status `json:"status"`
	IsAdmin    bool        `json:"is_admin"`
}

type updateUserRequest struct {
	Name       *string      `json:"name"`
	Email      *string      `json:"email"`
	Role       *string      `json:"role"`
	Department *string      `json:"department"`
	AvatarURL  *string      `json:"avatar_url"`
	Tenure     *string      `json:"tenure"`
	Title      *string      `json:"title"`
	Location   *string      `json:"location"`
	Status     *user.Status `json:"status"`
	IsAdmin    *bool        `json:"is_admin"`
}

type addSkillRequest struct {
	Name              string      `json:"name"`
	Category          string      `json:"category"`
	Subcategory       string      `json:"subcategory"`
	Proficiency       int         `json:"proficiency"`
	YearsOfExperience *int        `json:"years_of_experience"`
	CertificationURL  string      `json:"certification_url"`
	Notes             string      `json:"notes"`
	Tags              []uuid.UUID `json:"tags"`
}

type updateSkillRequest struct {
	Proficiency       *int        `json:"proficiency"`
	YearsOfExperience *int        `json:"years_of_experience"`
	CertificationURL  *string     `json:"certification_url"`
	Notes             *string     `json:"notes"`
	Tags              []uuid.UUID `json:"tags"`
}

func NewUserHandler(uc usecase.UserUsecase, staffing usecase.StaffingUsecase) *UserHandler {
	return &UserHandler{uc: uc, staffing: staffing}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Post("/me/skills", h.AddMySkill)
	r.Put("/me/skills/:skill_id", h.UpdateMySkill)

	r.Get("/users", h.List)
	r.Post("/users", middleware.RequireAdmin(), h.Create)
	r.Get("/users/export.csv", h.ExportRoster)
	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
	r.Put("/users/:id/skills/:skill_id/verify", middleware.RequireAdmin(), h.VerifySkill)
	r.Get("/users/:id/utilization", h.Utilization)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetUserProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) AddMySkill(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.uc.AddSkill(c.Context(), userID, usecase.AddSkillInput{
		Name:              req.Name,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		CertificationURL:  req.CertificationURL,
		Notes:             req.Notes,
		Tags:              req.Tags,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Skill added", dto.NewSkillResponse(created))
}

func (h *UserHandler) UpdateMySkill(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	skillID, err := pathUUID(c, "skill_id")
	if err != nil {
		return err
	}

	var req updateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), userID, skillID, usecase.UpdateSkillInput{
		Proficiency:       req.Proficiency,
		YearsOfExperience: req.YearsOfExperience,
		CertificationURL:  req.CertificationURL,
		Notes:             req.Notes,
		Tags:              req.Tags,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(updated))
}

func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.uc.GetAllUsers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserListResponse(users))
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req createUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.uc.CreateUser(c.Context(), usecase.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
		Tenure:     req.Tenure,
		Title:      req.Title,
		Location:   req.Location,
		Status:     req.Status,
		IsAdmin:    req.IsAdmin,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "User created", dto.NewUserResponse(created))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	usr, err := h.uc.GetUserByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.uc.UpdateUser(c.Context(), act, id, usecase.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		AvatarURL:  req.AvatarURL,
		Tenure:     req.Tenure,
		Title:      req.Title,
		Location:   req.Location,
		Status:     req.Status,
		IsAdmin:    req.IsAdmin,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

func (h *UserHandler) VerifySkill(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	skillID, err := pathUUID(c, "skill_id")
	if err != nil {
		return err
	}

	verified, err := h.uc.VerifySkill(c.Context(), id, skillID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill verified", dto.NewSkillResponse(verified))
}

func (h *UserHandler) ExportRoster(c fiber.Ctx) error {
	out, err := h.uc.ExportRosterCSV(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	return c.Status(fiber.StatusOK).Send(out.Content)
}

func (h *UserHandler) Utilization(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	start, err := queryDate(c, "start")
	if err != nil {
		return err
	}
	end, err := queryDate(c, "end")
	if err != nil {
		return err
	}

	summary, err := h.staffing.GetUserUtilization(c.Context(), id, utilization.Window{Start: start, End: end})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
