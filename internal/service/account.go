package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/logger"
)

func (s *Service) ListLockedAccounts(ctx context.Context, now time.Time) ([]entity.LockedAccount, error) {
	users, err := s.repo.LockedUsers(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("locked users: %w", err)
	}

	accounts := make([]entity.LockedAccount, 0, len(users))

	for _, u := range users {
		accounts = append(accounts, u.ToLockedAccount())
	}

	return accounts, nil
}

// UnlockAccount clears the lock and the failed attempts counter of the account with the given email.
func (s *Service) UnlockAccount(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("empty email: %w", entity.ErrBadRequest)
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user by email: %w", err)
	}

	err = s.repo.UnlockUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("unlock user: %w", err)
	}

	auditCtx := logger.SetLogType(ctx, "audit")
	slog.InfoContext(auditCtx, "account unlocked",
		"target_user_id", user.ID,
		"email", user.Email,
		"locked_until", user.LockedUntil,
		"failed_login_attempts", user.FailedLoginAttempts,
	)

	return nil
}

func (s *Service) VerifyPassword(ctx context.Context, userID uuid.UUID, candidate string) error {
	if candidate == "" {
		return fmt.Errorf("empty password: %w", entity.ErrBadRequest)
	}

	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == nil {
		return fmt.Errorf("user has no password: %w", entity.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entity.ErrUnauthorized
		}

		return fmt.Errorf("compare password: %w", err)
	}

	return nil
}

// CheckUnique reports whether value is free for the given field, ignoring the user excludeID.
func (s *Service) CheckUnique(
	ctx context.Context, field entity.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	switch field {
	case entity.UniqueFieldEmail:
		value = entity.NormalizeEmail(value)
	case entity.UniqueFieldFiscalCode:
		value = entity.NormalizeFiscalCode(value)
	default:
		return false, fmt.Errorf("unknown field %q: %w", field, entity.ErrBadRequest)
	}

	if value == "" {
		return false, fmt.Errorf("empty %s: %w", field, entity.ErrBadRequest)
	}

	exists, err := s.repo.UserExists(ctx, field, value, excludeID)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}

	return !exists, nil
}
