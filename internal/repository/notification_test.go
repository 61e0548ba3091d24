package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/repository"
)

func TestRepository_Notifications(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New(dbPool(t))

	owner := newUser(t, repo)
	other := newUser(t, repo)
	base := time.Now().UTC().Truncate(time.Microsecond)

	mk := func(userID uuid.UUID, typ entity.NotificationType, age time.Duration) entity.Notification {
		n := entity.Notification{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    userID,
			Type:      typ,
			Metadata:  json.RawMessage(`{"workdayId":"w1"}`),
			CreatedAt: base.Add(-age),
		}
		require.NoError(t, repo.CreateNotification(ctx, n))

		return n
	}

	missing := mk(owner.ID, entity.NotificationMissingHours, time.Minute)
	assigned := mk(owner.ID, entity.NotificationShiftAssigned, time.Hour)
	foreign := mk(other.ID, entity.NotificationMissingHours, time.Minute)

	got, err := repo.NotificationByID(ctx, missing.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID, got.UserID)
	require.JSONEq(t, `{"workdayId":"w1"}`, string(got.Metadata))

	_, err = repo.NotificationByID(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)

	list, err := repo.NotificationsByFilter(ctx, entity.NotificationsFilter{UserID: owner.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, missing.ID, list[0].ID)
	require.Equal(t, assigned.ID, list[1].ID)

	t.Run("single update is scoped to the owner", func(t *testing.T) {
		require.NoError(t, repo.MarkNotificationRead(ctx, foreign.ID, owner.ID))

		n, err := repo.NotificationByID(ctx, foreign.ID)
		require.NoError(t, err)
		require.False(t, n.Read)
	})

	t.Run("bulk update honours the type filter", func(t *testing.T) {
		typ := entity.NotificationMissingHours

		updated, err := repo.MarkAllNotificationsRead(ctx, owner.ID, &typ)
		require.NoError(t, err)
		require.Equal(t, int64(1), updated)

		unread, err := repo.NotificationsByFilter(ctx, entity.NotificationsFilter{UserID: owner.ID, UnreadOnly: true})
		require.NoError(t, err)
		require.Len(t, unread, 1)
		require.Equal(t, assigned.ID, unread[0].ID)

		n, err := repo.NotificationByID(ctx, foreign.ID)
		require.NoError(t, err)
		require.False(t, n.Read)
	})

	t.Run("bulk update on empty set", func(t *testing.T) {
		updated, err := repo.MarkAllNotificationsRead(ctx, owner.ID, nil)
		require.NoError(t, err)
		require.Equal(t, int64(1), updated)

		updated, err = repo.MarkAllNotificationsRead(ctx, owner.ID, nil)
		require.NoError(t, err)
		require.Zero(t, updated)
	})
}
