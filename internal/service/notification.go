package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

const notificationsListLimit = 100

func (s *Service) ListNotifications(ctx context.Context, callerID uuid.UUID, unreadOnly bool) ([]entity.Notification, error) {
	notifications, err := s.repo.NotificationsByFilter(ctx, entity.NotificationsFilter{
		UserID:     callerID,
		UnreadOnly: unreadOnly,
		Limit:      notificationsListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

func (s *Service) CreateNotification(ctx context.Context, n entity.Notification) error {
	if n.UserID.IsNil() || n.Type == "" {
		return fmt.Errorf("notification without user or type: %w", entity.ErrBadRequest)
	}

	if n.ID.IsNil() {
		n.ID = uuid.Must(uuid.NewV4())
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	slog.InfoContext(ctx, "notification created", "notification_id", n.ID, "target_user_id", n.UserID, "notification_type", n.Type)

	return nil
}

// MarkNotificationRead marks a notification owned by the caller as read.
// Marking an already read notification is a no-op.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID, callerID uuid.UUID) error {
	n, err := s.repo.NotificationByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("get notification %s: %w", notificationID, err)
	}

	if n.UserID != callerID {
		slog.WarnContext(ctx, "attempt to mark foreign notification", "notification_id", notificationID)
		return entity.ErrForbidden
	}

	if n.Read {
		return nil
	}

	err = s.repo.MarkNotificationRead(ctx, notificationID, callerID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (s *Service) MarkAllNotificationsRead(
	ctx context.Context, callerID uuid.UUID, notificationType *entity.NotificationType) error {
	updated, err := s.repo.MarkAllNotificationsRead(ctx, callerID, notificationType)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	slog.DebugContext(ctx, "notifications marked read", "count", updated)

	return nil
}

// UserHasMissingShifts reports whether any assignment of the user between the earliest and the
// latest of the given dates has no time entry logged.
func (s *Service) UserHasMissingShifts(ctx context.Context, userID uuid.UUID, dates []string) (bool, error) {
	if len(dates) == 0 {
		return false, nil
	}

	sorted := slices.Clone(dates)

	for _, d := range sorted {
		if _, err := time.Parse(entity.DateLayout, d); err != nil {
			return false, fmt.Errorf("date %q: %w", d, entity.ErrBadRequest)
		}
	}

	slices.Sort(sorted)

	from, _ := time.Parse(entity.DateLayout, sorted[0])
	to, _ := time.Parse(entity.DateLayout, sorted[len(sorted)-1])

	assignments, err := s.repo.UserAssignmentsInRange(ctx, userID, from, to)
	if err != nil {
		return false, fmt.Errorf("user assignments in range: %w", err)
	}

	for _, a := range assignments {
		if a.EntriesCount == 0 {
			return true, nil
		}
	}

	return false, nil
}
