package handlers

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/internal/api/presenters"
	"FreshTrack-API/pkg/notification"
	"errors"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	NotificationHandler interface {
		SendExpiryDigest(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) SendExpiryDigest(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "3"))
	if err != nil || days < 1 {
		days = 3
	}

	res, err := h.notificationService.SendExpiryDigest(c.Context(), days)
	if err != nil {
		if errors.Is(err, domain.ErrDigestAlreadyRunning) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSendExpiryDigest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendExpiryDigest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendExpiryDigest)
}
