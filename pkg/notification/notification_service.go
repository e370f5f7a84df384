package notification

import (
	"FreshTrack-API/domain"
	"FreshTrack-API/internal/metrics"
	"FreshTrack-API/internal/utils/mailing"
	"FreshTrack-API/pkg/grocery"
	"FreshTrack-API/pkg/user"
	"context"
	"fmt"
	"html"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const defaultDigestInterval = 24 * time.Hour

type (
	NotificationService interface {
		SendExpiryDigest(ctx context.Context, windowDays int) (domain.ExpiryDigestResponse, error)
		StartDigestScheduler(ctx context.Context, interval time.Duration, windowDays int)
	}

	notificationService struct {
		userRepository user.UserRepository
		groceryService grocery.GroceryService
		sender         mailing.Sender
		logger         zerolog.Logger
		running        atomic.Bool
	}
)

func NewNotificationService(userRepository user.UserRepository, groceryService grocery.GroceryService, sender mailing.Sender, logger zerolog.Logger) NotificationService {
	return &notificationService{
		userRepository: userRepository,
		groceryService: groceryService,
		sender:         sender,
		logger:         logger.With().Str("component", "notification").Logger(),
	}
}

// SendExpiryDigest emails every user a summary of their items expiring within
// the window. Per-user failures are logged and skipped so one bad mailbox does
// not starve the rest.
func (s *notificationService) SendExpiryDigest(ctx context.Context, windowDays int) (domain.ExpiryDigestResponse, error) {
	if !s.running.CompareAndSwap(false, true) {
		return domain.ExpiryDigestResponse{}, domain.ErrDigestAlreadyRunning
	}
	defer s.running.Store(false)

	if windowDays < 1 {
		windowDays = 3
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		metrics.ExpiryDigestRuns.WithLabelValues("error").Inc()
		return domain.ExpiryDigestResponse{}, err
	}

	usersNotified := 0
	itemsExpiring := 0

	for _, recipient := range users {
		expiring, err := s.groceryService.GetExpiringItems(ctx, recipient.ID.String(), windowDays)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", recipient.ID.String()).Msg("skipping user, expiring items lookup failed")
			continue
		}
		if len(expiring.Items) == 0 {
			continue
		}

		subject := fmt.Sprintf("FreshTrack: %d item(s) expiring soon", len(expiring.Items))
		if err := s.sender.SendMail(recipient.Email, subject, digestBody(recipient.FullName, expiring.Items, windowDays)); err != nil {
			s.logger.Warn().Err(err).Str("user_id", recipient.ID.String()).Msg("digest email failed")
			continue
		}

		metrics.ExpiryDigestEmails.Inc()
		usersNotified++
		itemsExpiring += len(expiring.Items)
	}

	metrics.ExpiryDigestRuns.WithLabelValues("success").Inc()
	s.logger.Info().
		Int("users_notified", usersNotified).
		Int("items_expiring", itemsExpiring).
		Int("window_days", windowDays).
		Msg("expiry digest sent")

	return domain.ExpiryDigestResponse{
		UsersNotified: usersNotified,
		ItemsExpiring: itemsExpiring,
		WindowDays:    windowDays,
		SentAt:        time.Now(),
	}, nil
}

// StartDigestScheduler runs the digest on a fixed interval until ctx is done.
func (s *notificationService) StartDigestScheduler(ctx context.Context, interval time.Duration, windowDays int) {
	if interval <= 0 {
		interval = defaultDigestInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", interval).Int("window_days", windowDays).Msg("digest scheduler started")
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("digest scheduler stopped")
				return
			case <-ticker.C:
				if _, err := s.SendExpiryDigest(ctx, windowDays); err != nil {
					s.logger.Error().Err(err).Msg("scheduled expiry digest failed")
				}
			}
		}
	}()
}

func digestBody(fullName string, items []domain.GroceryItemResponse, windowDays int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(fullName))
	fmt.Fprintf(&b, "<p>You have %d item(s) expiring within the next %d day(s):</p>", len(items), windowDays)
	b.WriteString("<ul>")
	for _, item := range items {
		expires := item.PredictedExpirationDate
		if item.ExpirationDate != nil {
			expires = item.ExpirationDate
		}
		if expires != nil {
			fmt.Fprintf(&b, "<li>%s expires on %s</li>", html.EscapeString(item.Name), expires.Format("Jan 2, 2006"))
		} else {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item.Name))
		}
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Use them before they go to waste.</p>")
	return b.String()
}
