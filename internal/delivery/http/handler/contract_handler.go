package handler

import (
	"skillforge/internal/domain/contract"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ContractHandler exposes the five project-scoped contract artifact kinds
// under /projects/:id/<kind>.
type ContractHandler struct {
	sows           *artifactHandler[contract.SOW]
	changeRequests *artifactHandler[contract.ChangeRequest]
	risks          *artifactHandler[contract.Risk]
	dependencies   *artifactHandler[contract.Dependency]
	documents      *artifactHandler[contract.Document]
}

func NewContractHandler(uc usecase.Contracts) *ContractHandler {
	return &ContractHandler{
		sows:           &artifactHandler[contract.SOW]{svc: uc.SOWs, label: "SOW"},
		changeRequests: &artifactHandler[contract.ChangeRequest]{svc: uc.ChangeRequests, label: "Change request"},
		risks:          &artifactHandler[contract.Risk]{svc: uc.Risks, label: "Risk"},
		dependencies:   &artifactHandler[contract.Dependency]{svc: uc.Dependencies, label: "Dependency"},
		documents:      &artifactHandler[contract.Document]{svc: uc.Documents, label: "Document"},
	}
}

func (h *ContractHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	h.sows.register(r, "sows")
	h.changeRequests.register(r, "change-requests")
	h.risks.register(r, "risks")
	h.dependencies.register(r, "dependencies")
	h.documents.register(r, "documents")
}

type artifactHandler[T contract.Artifact[T]] struct {
	svc   *usecase.ArtifactService[T]
	label string
}

func (h *artifactHandler[T]) register(r fiber.Router, segment string) {
	base := "/projects/:id/" + segment
	r.Get(base, h.list)
	r.Post(base, h.create)
	r.Get(base+"/:artifact_id", h.get)
	r.Put(base+"/:artifact_id", h.update)
	r.Delete(base+"/:artifact_id", h.delete)
}

func (h *artifactHandler[T]) list(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.svc.List(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *artifactHandler[T]) get(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "artifact_id")
	if err != nil {
		return err
	}

	item, err := h.svc.Get(c.Context(), projectID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *artifactHandler[T]) create(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req T
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	created, err := h.svc.Create(c.Context(), projectID, req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, h.label+" created", created)
}

func (h *artifactHandler[T]) update(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "artifact_id")
	if err != nil {
		return err
	}

	var req T
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}

	updated, err := h.svc.Update(c.Context(), projectID, id, req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *artifactHandler[T]) delete(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "artifact_id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Context(), projectID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, h.label+" deleted", nil)
}
