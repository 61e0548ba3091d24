package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func (r *Repository) Areas(ctx context.Context) ([]entity.Area, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, created_at FROM areas`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var areas []entity.Area

	for rows.Next() {
		var a entity.Area

		err = rows.Scan(&a.ID, &a.Name, &a.Code, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		areas = append(areas, a)
	}

	return areas, rows.Err()
}

func (r *Repository) Duties(ctx context.Context) ([]entity.Duty, error) {
	rows, err := r.db.Query(ctx, `SELECT id, area_id, name, code, created_at FROM duties`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var duties []entity.Duty

	for rows.Next() {
		var d entity.Duty

		err = rows.Scan(&d.ID, &d.AreaID, &d.Name, &d.Code, &d.CreatedAt)
		if err != nil {
			return nil, err
		}

		duties = append(duties, d)
	}

	return duties, rows.Err()
}

func (r *Repository) UpdateAreaCodes(ctx context.Context, updates []entity.CodeUpdate) error {
	return r.updateCodes(ctx, "areas", updates)
}

func (r *Repository) UpdateDutyCodes(ctx context.Context, updates []entity.CodeUpdate) error {
	return r.updateCodes(ctx, "duties", updates)
}

// updateCodes sends one guarded statement per row in a single batch.
func (r *Repository) updateCodes(ctx context.Context, table string, updates []entity.CodeUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	sqlQuery := fmt.Sprintf(`UPDATE %s SET code = $1 WHERE id = $2 AND code IS DISTINCT FROM $1`, table)

	batch := &pgx.Batch{}

	for _, u := range updates {
		batch.Queue(sqlQuery, u.Code, u.ID)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for _, u := range updates {
		_, err := br.Exec()
		if err != nil {
			return fmt.Errorf("update %s code %s: %w", table, u.ID, err)
		}
	}

	return nil
}
