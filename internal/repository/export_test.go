package repository

import (
	"context"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

// CreateUser seeds users for the repository tests. Accounts are provisioned outside this service.
func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	sqlQuery :=
		`INSERT INTO users (id, email, name, surname, code, fiscal_code, password_hash, role, is_worker, is_active,
			locked_until, failed_login_attempts, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, sqlQuery,
		u.ID,
		u.Email,
		u.Name,
		u.Surname,
		u.Code,
		u.FiscalCode,
		u.PasswordHash,
		u.Role,
		u.IsWorker,
		u.IsActive,
		u.LockedUntil,
		u.FailedLoginAttempts,
		u.CompanyID,
		u.CreatedAt,
		u.UpdatedAt,
	)

	return err
}
