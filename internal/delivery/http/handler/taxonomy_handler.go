package handler

import (
	"net/url"
	"strings"

	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/pkg/response"
	"skillforge/internal/taxonomy"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TaxonomyHandler struct {
	uc usecase.TaxonomyUsecase
}

type tagRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func NewTaxonomyHandler(uc usecase.TaxonomyUsecase) *TaxonomyHandler {
	return &TaxonomyHandler{uc: uc}
}

func (h *TaxonomyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/taxonomy")
	grp.Get("/categories", h.ListCategories)
	grp.Post("/categories", middleware.RequireAdmin(), h.AddCategory)
	grp.Put("/categories/:name", middleware.RequireAdmin(), h.UpdateCategory)
	grp.Delete("/categories/:name", middleware.RequireAdmin(), h.DeleteCategory)
	grp.Get("/tags", h.ListTags)
	grp.Post("/tags", middleware.RequireAdmin(), h.AddTag)
	grp.Delete("/tags/:id", middleware.RequireAdmin(), h.DeleteTag)
	grp.Get("/search", h.Search)
}

func (h *TaxonomyHandler) ListCategories(c fiber.Ctx) error {
	cats, err := h.uc.GetCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cats)
}

func (h *TaxonomyHandler) AddCategory(c fiber.Ctx) error {
	var req taxonomy.Category
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.uc.AddCategory(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Category created", created)
}

func (h *TaxonomyHandler) UpdateCategory(c fiber.Ctx) error {
	name, err := categoryName(c)
	if err != nil {
		return err
	}

	var req taxonomy.Category
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.uc.UpdateCategory(c.Context(), name, req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *TaxonomyHandler) DeleteCategory(c fiber.Ctx) error {
	name, err := categoryName(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Context(), name); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Category deleted", nil)
}

func (h *TaxonomyHandler) ListTags(c fiber.Ctx) error {
	tags, err := h.uc.GetTags(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tags)
}

func (h *TaxonomyHandler) AddTag(c fiber.Ctx) error {
	var req tagRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.uc.AddTag(c.Context(), usecase.AddTagInput{Name: req.Name, Color: req.Color, Description: req.Description})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Tag created", created)
}

func (h *TaxonomyHandler) DeleteTag(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTag(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Tag deleted", nil)
}

func (h *TaxonomyHandler) Search(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	hits, err := h.uc.SearchSkills(c.Context(), c.Query("q"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, hits)
}

// categoryName decodes the :name segment, e.g. "Data%20%26%20AI".
func categoryName(c fiber.Ctx) (string, error) {
	raw, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid name", nil, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid name", nil, nil)
	}
	return raw, nil
}
