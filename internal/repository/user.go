package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

const userColumns = `id, email, name, surname, code, fiscal_code, password_hash, role, is_worker, is_active,
	locked_until, failed_login_attempts, company_id, created_at, updated_at`

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Surname,
		&u.Code,
		&u.FiscalCode,
		&u.PasswordHash,
		&u.Role,
		&u.IsWorker,
		&u.IsActive,
		&u.LockedUntil,
		&u.FailedLoginAttempts,
		&u.CompanyID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	sqlQuery := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(r.db.QueryRow(ctx, sqlQuery, id))
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	sqlQuery := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)
		ORDER BY is_active DESC, created_at DESC LIMIT 1`

	return scanUser(r.db.QueryRow(ctx, sqlQuery, email))
}

func (r *Repository) UserProfile(ctx context.Context, id uuid.UUID) (entity.UserProfile, error) {
	sqlQuery :=
		`SELECT u.id, u.email, u.name, u.surname, u.code, u.fiscal_code, u.role, u.is_worker, u.is_active,
			u.company_id, c.name
		FROM users u
		LEFT JOIN companies c ON c.id = u.company_id
		WHERE u.id = $1`

	var p entity.UserProfile

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&p.ID,
		&p.Email,
		&p.Name,
		&p.Surname,
		&p.Code,
		&p.FiscalCode,
		&p.Role,
		&p.IsWorker,
		&p.IsActive,
		&p.CompanyID,
		&p.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserProfile{}, entity.ErrNotFound
		}

		return entity.UserProfile{}, err
	}

	return p, nil
}

func (r *Repository) UserDuties(ctx context.Context, userID uuid.UUID) ([]entity.UserDuty, error) {
	sqlQuery :=
		`SELECT a.id, a.name, d.id, d.name, d.code
		FROM user_duties ud
		JOIN areas a ON a.id = ud.area_id
		JOIN duties d ON d.id = ud.duty_id
		WHERE ud.user_id = $1
		ORDER BY a.code, a.name, d.code, d.name`

	rows, err := r.db.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var duties []entity.UserDuty

	for rows.Next() {
		var d entity.UserDuty

		err = rows.Scan(&d.AreaID, &d.AreaName, &d.DutyID, &d.DutyName, &d.DutyCode)
		if err != nil {
			return nil, err
		}

		duties = append(duties, d)
	}

	return duties, rows.Err()
}

func (r *Repository) UserExists(
	ctx context.Context, field entity.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	var cond sq.Sqlizer

	switch field {
	case entity.UniqueFieldEmail:
		cond = sq.Expr("LOWER(email) = ?", entity.NormalizeEmail(value))
	case entity.UniqueFieldFiscalCode:
		cond = sq.Expr("UPPER(fiscal_code) = ?", entity.NormalizeFiscalCode(value))
	default:
		return false, fmt.Errorf("unknown unique field %q: %w", field, entity.ErrBadRequest)
	}

	sub := sq.Select("1").From("users").Where(cond).Where(sq.Eq{"is_active": true})

	if excludeID != nil {
		sub = sub.Where(sq.NotEq{"id": *excludeID})
	}

	sqlQuery, args, err := psql.Select().Column(sq.Alias(sq.Expr("EXISTS (?)", sub), "found")).ToSql()
	if err != nil {
		return false, err
	}

	var found bool

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&found)
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r *Repository) LockedUsers(ctx context.Context, now time.Time) ([]entity.User, error) {
	sqlQuery := `SELECT ` + userColumns + `
		FROM users
		WHERE locked_until IS NOT NULL AND locked_until > $1
		ORDER BY locked_until ASC, id`

	rows, err := r.db.Query(ctx, sqlQuery, now)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) UnlockUser(ctx context.Context, id uuid.UUID) error {
	sqlQuery :=
		`UPDATE users
		SET locked_until = NULL, failed_login_attempts = 0, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
