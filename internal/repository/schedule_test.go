package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/repository"
)

func TestRepository_Assignments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	u := newUser(t, repo)

	taskTypeID := uuid.Must(uuid.NewV4())
	exec(t, pool, `INSERT INTO task_types (id, name, type, color) VALUES ($1, 'Load-in', 'SETUP', '#ff0000')`, taskTypeID)

	day1 := time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 5)

	workday := func(date time.Time) uuid.UUID {
		id := uuid.Must(uuid.NewV4())
		exec(t, pool, `INSERT INTO workdays (id, date) VALUES ($1, $2)`, id, date)

		return id
	}

	assign := func(workdayID uuid.UUID, start time.Time) uuid.UUID {
		id := uuid.Must(uuid.NewV4())
		exec(t, pool,
			`INSERT INTO assignments (id, workday_id, user_id, task_type_id, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, workdayID, u.ID, taskTypeID, start, start.Add(4*time.Hour))

		return id
	}

	w1, w2, w3 := workday(day1), workday(day2), workday(day3)

	late := assign(w1, day1.Add(14*time.Hour))
	early := assign(w1, day1.Add(9*time.Hour))
	unlogged := assign(w2, day2.Add(9*time.Hour))
	_ = assign(w3, day3.Add(9*time.Hour))

	exec(t, pool, `INSERT INTO time_entries (id, assignment_id, hours) VALUES ($1, $2, 3.5), ($3, $2, 0.25)`,
		uuid.Must(uuid.NewV4()), early, uuid.Must(uuid.NewV4()))
	exec(t, pool, `INSERT INTO time_entries (id, assignment_id, hours) VALUES ($1, $2, 4)`,
		uuid.Must(uuid.NewV4()), late)

	t.Run("workday assignments", func(t *testing.T) {
		got, err := repo.WorkdayAssignments(ctx, w1)
		require.NoError(t, err)
		require.Len(t, got, 2)

		require.Equal(t, early, got[0].ID)
		require.True(t, decimal.RequireFromString("3.75").Equal(got[0].LoggedHours))
		require.Equal(t, "Load-in", got[0].TaskType.Name)
		require.Equal(t, u.ID, got[0].User.ID)
		require.Equal(t, late, got[1].ID)
	})

	t.Run("range is inclusive", func(t *testing.T) {
		got, err := repo.UserAssignmentsInRange(ctx, u.ID, day1, day2)
		require.NoError(t, err)
		require.Len(t, got, 3)

		counts := make(map[uuid.UUID]int)
		for _, a := range got {
			counts[a.ID] = a.EntriesCount
		}

		require.Equal(t, 2, counts[early])
		require.Equal(t, 1, counts[late])
		require.Equal(t, 0, counts[unlogged])
	})
}

func TestRepository_CountUnavailabilitiesByStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	u := newUser(t, repo)

	before, err := repo.CountUnavailabilitiesByStatus(ctx, entity.UnavailabilityPending)
	require.NoError(t, err)

	for _, status := range []entity.UnavailabilityStatus{
		entity.UnavailabilityPending, entity.UnavailabilityPending, entity.UnavailabilityApproved,
	} {
		exec(t, pool,
			`INSERT INTO unavailabilities (id, user_id, status, start_date, end_date) VALUES ($1, $2, $3, $4, $4)`,
			uuid.Must(uuid.NewV4()), u.ID, status, time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC))
	}

	after, err := repo.CountUnavailabilitiesByStatus(ctx, entity.UnavailabilityPending)
	require.NoError(t, err)
	require.Equal(t, before+2, after)
}
