package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func TestService_MarkNotificationRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	notificationID := uuid.Must(uuid.NewV4())

	t.Run("owner marks unread", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().NotificationByID(ctx, notificationID).
			Return(entity.Notification{ID: notificationID, UserID: owner}, nil)
		ts.repo.EXPECT().MarkNotificationRead(ctx, notificationID, owner).Return(nil)

		require.NoError(t, ts.s.MarkNotificationRead(ctx, notificationID, owner))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().NotificationByID(ctx, notificationID).
			Return(entity.Notification{ID: notificationID, UserID: owner, Read: true}, nil).Times(2)

		require.NoError(t, ts.s.MarkNotificationRead(ctx, notificationID, owner))
		require.NoError(t, ts.s.MarkNotificationRead(ctx, notificationID, owner))
	})

	t.Run("foreign notification is forbidden and untouched", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().NotificationByID(ctx, notificationID).
			Return(entity.Notification{ID: notificationID, UserID: owner}, nil)
		ts.repo.EXPECT().MarkNotificationRead(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := ts.s.MarkNotificationRead(ctx, notificationID, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("missing notification", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().NotificationByID(ctx, notificationID).Return(entity.Notification{}, entity.ErrNotFound)

		err := ts.s.MarkNotificationRead(ctx, notificationID, owner)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_MarkAllNotificationsRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	caller := uuid.Must(uuid.NewV4())

	t.Run("with type filter", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)
		missing := entity.NotificationMissingHours

		ts.repo.EXPECT().MarkAllNotificationsRead(ctx, caller, &missing).Return(int64(3), nil)

		require.NoError(t, ts.s.MarkAllNotificationsRead(ctx, caller, &missing))
	})

	t.Run("empty set succeeds", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().MarkAllNotificationsRead(ctx, caller, nil).Return(int64(0), nil)

		require.NoError(t, ts.s.MarkAllNotificationsRead(ctx, caller, nil))
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().MarkAllNotificationsRead(ctx, caller, nil).Return(int64(0), errors.New("conn reset"))

		require.Error(t, ts.s.MarkAllNotificationsRead(ctx, caller, nil))
	})
}

func TestService_UserHasMissingShifts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := []string{"2025-03-09", "2025-03-01", "2025-03-04"}

	t.Run("empty dates issue no query", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		got, err := ts.s.UserHasMissingShifts(ctx, userID, nil)
		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("assignment without entries", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserAssignmentsInRange(ctx, userID, from, to).Return([]entity.UserAssignment{
			{ID: uuid.Must(uuid.NewV4()), EntriesCount: 2},
			{ID: uuid.Must(uuid.NewV4()), EntriesCount: 0},
		}, nil)

		got, err := ts.s.UserHasMissingShifts(ctx, userID, dates)
		require.NoError(t, err)
		require.True(t, got)
		require.Equal(t, []string{"2025-03-09", "2025-03-01", "2025-03-04"}, dates)
	})

	t.Run("all assignments logged", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserAssignmentsInRange(ctx, userID, from, to).Return([]entity.UserAssignment{
			{ID: uuid.Must(uuid.NewV4()), EntriesCount: 1},
		}, nil)

		got, err := ts.s.UserHasMissingShifts(ctx, userID, dates)
		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("malformed date", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		_, err := ts.s.UserHasMissingShifts(ctx, userID, []string{"2025-13-01"})
		require.ErrorIs(t, err, entity.ErrBadRequest)
	})
}

func TestService_CreateNotification(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	ts := newTestService(t, false)

	ts.repo.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n entity.Notification) error {
			require.False(t, n.ID.IsNil())
			require.False(t, n.CreatedAt.IsZero())
			require.Equal(t, userID, n.UserID)
			require.False(t, n.Read)

			return nil
		})

	err := ts.s.CreateNotification(ctx, entity.Notification{
		UserID:   userID,
		Type:     entity.NotificationShiftAssigned,
		Metadata: json.RawMessage(`{"workdayId":"x"}`),
	})
	require.NoError(t, err)

	err = ts.s.CreateNotification(ctx, entity.Notification{Type: entity.NotificationShiftAssigned})
	require.ErrorIs(t, err, entity.ErrBadRequest)
}

func TestService_ListNotifications(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	ts := newTestService(t, false)

	want := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), UserID: userID}}

	ts.repo.EXPECT().NotificationsByFilter(ctx, entity.NotificationsFilter{
		UserID:     userID,
		UnreadOnly: true,
		Limit:      100,
	}).Return(want, nil)

	got, err := ts.s.ListNotifications(ctx, userID, true)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
