package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func (r *Repository) WorkdayAssignments(ctx context.Context, workdayID uuid.UUID) ([]entity.WorkdayAssignment, error) {
	sqlQuery :=
		`SELECT a.id, a.workday_id, a.start_time, a.end_time,
			u.id, u.name, u.code,
			tt.id, tt.name, tt.type, tt.color,
			COALESCE((SELECT SUM(te.hours) FROM time_entries te WHERE te.assignment_id = a.id), 0)
		FROM assignments a
		JOIN users u ON u.id = a.user_id
		JOIN task_types tt ON tt.id = a.task_type_id
		WHERE a.workday_id = $1
		ORDER BY a.start_time ASC, a.id`

	rows, err := r.db.Query(ctx, sqlQuery, workdayID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	assignments := make([]entity.WorkdayAssignment, 0)

	for rows.Next() {
		var a entity.WorkdayAssignment

		err = rows.Scan(
			&a.ID,
			&a.WorkdayID,
			&a.StartTime,
			&a.EndTime,
			&a.User.ID,
			&a.User.Name,
			&a.User.Code,
			&a.TaskType.ID,
			&a.TaskType.Name,
			&a.TaskType.Type,
			&a.TaskType.Color,
			&a.LoggedHours,
		)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// UserAssignmentsInRange returns the user's assignments on workdays within [from, to], both inclusive.
func (r *Repository) UserAssignmentsInRange(
	ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.UserAssignment, error) {
	sqlQuery :=
		`SELECT a.id, a.workday_id, w.date, COUNT(te.id)
		FROM assignments a
		JOIN workdays w ON w.id = a.workday_id
		LEFT JOIN time_entries te ON te.assignment_id = a.id
		WHERE a.user_id = $1 AND w.date BETWEEN $2 AND $3
		GROUP BY a.id, a.workday_id, w.date
		ORDER BY w.date, a.id`

	rows, err := r.db.Query(ctx, sqlQuery, userID, from, to)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var assignments []entity.UserAssignment

	for rows.Next() {
		var a entity.UserAssignment

		err = rows.Scan(&a.ID, &a.WorkdayID, &a.WorkdayDate, &a.EntriesCount)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *Repository) CountUnavailabilitiesByStatus(ctx context.Context, status entity.UnavailabilityStatus) (int, error) {
	sqlQuery := `SELECT COUNT(*) FROM unavailabilities WHERE status = $1`

	var count int

	err := r.db.QueryRow(ctx, sqlQuery, status).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
