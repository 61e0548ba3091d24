package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func TestService_SendTestEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("development", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, true)

		ts.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg entity.Message) (string, error) {
			require.Equal(t, "ops@example.com", msg.To)
			require.True(t, msg.HTML)

			return "msg-1", nil
		})
		ts.mailer.EXPECT().Provider().Return("smtp")

		got, err := ts.s.SendTestEmail(ctx, "Ops <ops@example.com>")
		require.NoError(t, err)
		require.Equal(t, entity.DeliveryReport{OK: true, Provider: "smtp", To: "ops@example.com", MessageID: "msg-1"}, got)
	})

	t.Run("production refuses", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		_, err := ts.s.SendTestEmail(ctx, "ops@example.com")
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("bad recipient", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, true)

		_, err := ts.s.SendTestEmail(ctx, "not an address")
		require.ErrorIs(t, err, entity.ErrBadRequest)
	})
}
