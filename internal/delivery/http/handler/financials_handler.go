package handler

import (
	"skillforge/internal/delivery/http/dto"
	"skillforge/internal/delivery/http/middleware"
	"skillforge/internal/pkg/response"
	"skillforge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// FinancialsHandler serves admin-only compensation data.
type FinancialsHandler struct {
	uc usecase.FinancialsUsecase
}

type financialsRequest struct {
	PaybandID          string   `json:"payband_id"`
	RateCardID         string   `json:"rate_card_id"`
	CustomRate         *float64 `json:"custom_rate"`
	CustomRateCurrency string   `json:"custom_rate_currency"`
	EffectiveDate      dto.Date `json:"effective_date"`
}

func NewFinancialsHandler(uc usecase.FinancialsUsecase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

func (h *FinancialsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	admin := middleware.RequireAdmin()
	r.Get("/paybands", admin, h.Paybands)
	r.Get("/rate-cards", admin, h.RateCards)
	r.Get("/users/:id/financials", admin, h.Get)
	r.Put("/users/:id/financials", admin, h.Update)
}

func (h *FinancialsHandler) Paybands(c fiber.Ctx) error {
	list, err := h.uc.GetPaybands(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *FinancialsHandler) RateCards(c fiber.Ctx) error {
	list, err := h.uc.GetRateCards(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *FinancialsHandler) Get(c fiber.Ctx) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	fin, err := h.uc.GetUserFinancials(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fin)
}

func (h *FinancialsHandler) Update(c fiber.Ctx) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req financialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badPayload(err)
	}
	payband, err := optionalUUID("payband_id", req.PaybandID)
	if err != nil {
		return err
	}
	rateCard, err := optionalUUID("rate_card_id", req.RateCardID)
	if err != nil {
		return err
	}

	saved, err := h.uc.UpdateUserFinancials(c.Context(), userID, usecase.FinancialsInput{
		PaybandID:          payband,
		RateCardID:         rateCard,
		CustomRate:         req.CustomRate,
		CustomRateCurrency: req.CustomRateCurrency,
		EffectiveDate:      req.EffectiveDate.Time,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved)
}
