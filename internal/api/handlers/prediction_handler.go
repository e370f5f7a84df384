package handlers

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/internal/api/presenters"
	"FreshTrack-API/pkg/prediction"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	PredictionHandler interface {
		PredictExpiration(c *fiber.Ctx) error
	}

	predictionHandler struct {
		predictionService prediction.PredictionService
		validator         *validator.Validate
	}
)

func NewPredictionHandler(predictionService prediction.PredictionService, validator *validator.Validate) PredictionHandler {
	return &predictionHandler{
		predictionService: predictionService,
		validator:         validator,
	}
}

func (h *predictionHandler) PredictExpiration(c *fiber.Ctx) error {
	req := new(domain.PredictExpirationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictExpiration, err)
	}

	var purchaseDate time.Time
	if req.PurchaseDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PurchaseDate)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", req.PurchaseDate)
		}
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictExpiration, domain.ErrInvalidPurchaseDate)
		}
		purchaseDate = parsed
	}

	predicted := h.predictionService.Predict(
		domain.FoodCategory(req.Category),
		domain.StorageLocation(req.StorageLocation),
		purchaseDate,
	)

	res := domain.PredictExpirationResponse{
		Days:            predicted.Days,
		ConfidenceScore: predicted.ConfidenceScore,
		ExpirationDate:  predicted.ExpirationDate,
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictExpiration)
}
