package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func (r *Repository) NotificationByID(ctx context.Context, id uuid.UUID) (entity.Notification, error) {
	sqlQuery :=
		`SELECT id, user_id, type, read, metadata, created_at
		FROM notifications
		WHERE id = $1`

	var n entity.Notification

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Read,
		&n.Metadata,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Notification{}, entity.ErrNotFound
		}

		return entity.Notification{}, err
	}

	return n, nil
}

func (r *Repository) NotificationsByFilter(
	ctx context.Context, filter entity.NotificationsFilter) ([]entity.Notification, error) {
	stmt := psql.Select("id", "user_id", "type", "read", "metadata", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "id")

	if filter.UnreadOnly {
		stmt = stmt.Where(sq.Eq{"read": false})
	}

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	notifications := make([]entity.Notification, 0)

	for rows.Next() {
		var n entity.Notification

		err = rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Read, &n.Metadata, &n.CreatedAt)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) error {
	sqlQuery :=
		`INSERT INTO notifications (id, user_id, type, read, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	var metadata []byte
	if len(n.Metadata) > 0 {
		metadata = n.Metadata
	}

	_, err := r.db.Exec(ctx, sqlQuery, n.ID, n.UserID, n.Type, n.Read, metadata, n.CreatedAt)

	return err
}

// MarkNotificationRead is scoped to the owner so a foreign id never matches.
func (r *Repository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	sqlQuery :=
		`UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2`

	_, err := r.db.Exec(ctx, sqlQuery, id, userID)

	return err
}

func (r *Repository) MarkAllNotificationsRead(
	ctx context.Context, userID uuid.UUID, notificationType *entity.NotificationType) (int64, error) {
	stmt := psql.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"user_id": userID, "read": false})

	if notificationType != nil {
		stmt = stmt.Where(sq.Eq{"type": *notificationType})
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
