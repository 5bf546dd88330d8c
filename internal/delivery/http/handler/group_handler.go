package handler

import (
	"skillforge/internal/domain/group"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GroupHandler struct {
	uc usecase.GroupUsecase
}

type groupRequest struct {
	Name          string     `json:"name"`
	Type          group.Type `json:"type"`
	OwnerID       string     `json:"owner_id"`
	ParentGroupID string     `json:"parent_group_id"`
	Description   string     `json:"description"`
}

type membershipRequest struct {
	IsPrimary bool `json:"is_primary"`
}

func (r groupRequest) input() (usecase.GroupInput, error) {
	owner, err := optionalUUID("owner_id", r.OwnerID)
	if err != nil {
		return usecase.GroupInput{}, err
	}
	parent, err := optionalUUID("parent_group_id", r.ParentGroupID)
	if err != nil {
		return usecase.GroupInput{}, err
	}
	return usecase.GroupInput{
		Name:          r.Name,
		Type:          r.Type,
		OwnerID:       owner,
		ParentGroupID: parent,
		Description:   r.Description,
	}, nil
}

func NewGroupHandler(uc usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

func (h *GroupHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/groups")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/tree", h.Tree)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/members", h.Members)
	grp.Post("/:id/members/:user_id", h.AddMember)
	grp.Delete("/:id/members/:user_id", h.RemoveMember)
	grp.Put("/:id/members/:user_id/primary", h.SetPrimary)

	r.Get("/users/:id/groups", h.UserGroups)
}

func (h *GroupHandler) List(c fiber.Ctx) error {
	list, err := h.uc.GetGroups(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *GroupHandler) Tree(c fiber.Ctx) error {
	tree, err := h.uc.GetGroupTree(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tree)
}

func (h *GroupHandler) Create(c fiber.Ctx) error {
	var req groupRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}
	in, err := req.input()
	if err != nil {
		return err
	}

	created, err := h.uc.CreateGroup(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Group created", created)
}

func (h *GroupHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	g, err := h.uc.GetGroup(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, g)
}

func (h *GroupHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req groupRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}
	in, err := req.input()
	if err != nil {
		return err
	}

	updated, err := h.uc.UpdateGroup(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *GroupHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteGroup(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Group deleted", nil)
}

func (h *GroupHandler) Members(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.uc.GetGroupMembers(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, members)
}

func (h *GroupHandler) AddMember(c fiber.Ctx) error {
	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	var req membershipRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badPayload(err)
		}
	}

	m, err := h.uc.AddUserToGroup(c.Context(), groupID, userID, req.IsPrimary)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Member added", m)
}

func (h *GroupHandler) RemoveMember(c fiber.Ctx) error {
	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveUserFromGroup(c.Context(), groupID, userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member removed", nil)
}

func (h *GroupHandler) SetPrimary(c fiber.Ctx) error {
	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	req := membershipRequest{IsPrimary: true}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badPayload(err)
		}
	}

	m, err := h.uc.UpdateUserGroupPrimary(c.Context(), groupID, userID, req.IsPrimary)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, m)
}

func (h *GroupHandler) UserGroups(c fiber.Ctx) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	groups, err := h.uc.GetUserGroups(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, groups)
}
