package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendExpiryDigest = "expiry digest sent successfully"

	MessageFailedSendExpiryDigest = "failed to send expiry digest"

	ErrDigestAlreadyRunning = errors.New("expiry digest already running")
)

type (
	ExpiryDigestResponse struct {
		UsersNotified int       `json:"users_notified"`
		ItemsExpiring int       `json:"items_expiring"`
		WindowDays    int       `json:"window_days"`
		SentAt        time.Time `json:"sent_at"`
	}
)
