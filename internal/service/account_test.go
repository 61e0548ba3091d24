package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func TestService_ListLockedAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	soon := now.Add(15 * time.Minute)
	later := now.Add(time.Hour)
	attempts := 5
	hash := "$2a$10$secret"

	ts := newTestService(t, false)

	ts.repo.EXPECT().LockedUsers(ctx, now).Return([]entity.User{
		{ID: uuid.Must(uuid.NewV4()), Email: "a@example.com", LockedUntil: &soon, FailedLoginAttempts: &attempts, PasswordHash: &hash},
		{ID: uuid.Must(uuid.NewV4()), Email: "b@example.com", LockedUntil: &later},
	}, nil)

	got, err := ts.s.ListLockedAccounts(ctx, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "a@example.com", got[0].Email)
	require.Equal(t, "2025-03-01T10:15:00Z", *got[0].LockedUntil)
	require.Equal(t, 5, got[0].FailedLoginAttempts)

	require.Equal(t, "2025-03-01T11:00:00Z", *got[1].LockedUntil)
	require.Equal(t, 0, got[1].FailedLoginAttempts)
}

func TestService_UnlockAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("unlocks by case-insensitive email", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserByEmail(ctx, "mario.rossi@example.com").
			Return(entity.User{ID: userID, Email: "Mario.Rossi@example.com"}, nil)
		ts.repo.EXPECT().UnlockUser(ctx, userID).Return(nil)

		require.NoError(t, ts.s.UnlockAccount(ctx, "  Mario.Rossi@Example.com "))
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserByEmail(ctx, "ghost@example.com").Return(entity.User{}, entity.ErrNotFound)

		require.ErrorIs(t, ts.s.UnlockAccount(ctx, "ghost@example.com"), entity.ErrNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		require.ErrorIs(t, ts.s.UnlockAccount(ctx, " "), entity.ErrBadRequest)
	})
}

func TestService_VerifyPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	raw, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	hash := string(raw)

	tests := []struct {
		name      string
		user      entity.User
		repoErr   error
		candidate string
		wantErr   error
	}{
		{name: "match", user: entity.User{ID: userID, PasswordHash: &hash}, candidate: "correct horse"},
		{name: "mismatch", user: entity.User{ID: userID, PasswordHash: &hash}, candidate: "wrong", wantErr: entity.ErrUnauthorized},
		{name: "no hash", user: entity.User{ID: userID}, candidate: "correct horse", wantErr: entity.ErrNotFound},
		{name: "no user", repoErr: entity.ErrNotFound, candidate: "correct horse", wantErr: entity.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t, false)

			ts.repo.EXPECT().UserByID(ctx, userID).Return(tt.user, tt.repoErr)

			err := ts.s.VerifyPassword(ctx, userID, tt.candidate)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CheckUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	self := uuid.Must(uuid.NewV4())

	t.Run("email taken by another user", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserExists(ctx, entity.UniqueFieldEmail, "anna@example.com", nil).Return(true, nil)

		available, err := ts.s.CheckUnique(ctx, entity.UniqueFieldEmail, "Anna@Example.com", nil)
		require.NoError(t, err)
		require.False(t, available)
	})

	t.Run("own fiscal code with exclusion", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		ts.repo.EXPECT().UserExists(ctx, entity.UniqueFieldFiscalCode, "RSSMRA80A01H501U", &self).Return(false, nil)

		available, err := ts.s.CheckUnique(ctx, entity.UniqueFieldFiscalCode, " rssmra80a01h501u ", &self)
		require.NoError(t, err)
		require.True(t, available)
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()

		ts := newTestService(t, false)

		_, err := ts.s.CheckUnique(ctx, entity.UniqueFieldEmail, "", nil)
		require.ErrorIs(t, err, entity.ErrBadRequest)
	})
}
