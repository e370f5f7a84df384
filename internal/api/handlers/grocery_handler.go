package handlers

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/internal/api/presenters"
	"FreshTrack-API/pkg/grocery"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	GroceryHandler interface {
		AddGroceryItem(c *fiber.Ctx) error
		GetGroceryItems(c *fiber.Ctx) error
		GetGroceryItemDetails(c *fiber.Ctx) error
		UpdateGroceryItem(c *fiber.Ctx) error
		DeleteGroceryItem(c *fiber.Ctx) error
		ConsumeGroceryItem(c *fiber.Ctx) error
		SyncGroceries(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) GetGroceryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Parse pagination parameters
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}

	filter := domain.GroceryItemFilter{
		Category:        c.Query("category"),
		StorageLocation: c.Query("storage_location"),
		IncludeConsumed: c.QueryBool("include_consumed", false),
		Page:            page,
		Limit:           limit,
	}

	res, err := h.groceryService.GetGroceryItems(c.Context(), userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) GetGroceryItemDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.groceryService.GetGroceryItemByID(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItem)
}

func (h *groceryHandler) UpdateGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryItem, err)
	}

	res, err := h.groceryService.UpdateGroceryItem(c.Context(), itemID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryItem)
}

func (h *groceryHandler) DeleteGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.groceryService.DeleteGroceryItem(c.Context(), itemID, userID); err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryItem)
}

func (h *groceryHandler) ConsumeGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ConsumeGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeGroceryItem, err)
	}

	res, err := h.groceryService.ConsumeGroceryItem(c.Context(), itemID, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGroceryItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConsumeGroceryItem, err)
		case errors.Is(err, domain.ErrGroceryItemAlreadyConsumed):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedConsumeGroceryItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumeGroceryItem)
}

func (h *groceryHandler) SyncGroceries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SyncGroceriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncGroceries, err)
	}

	res, err := h.groceryService.SyncGroceries(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncGroceries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSyncGroceries)
}

func (h *groceryHandler) GetExpiringItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days, err := strconv.Atoi(c.Query("days", "3"))
	if err != nil || days < 1 {
		days = 3
	}

	res, err := h.groceryService.GetExpiringItems(c.Context(), userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiringItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiringItems)
}
