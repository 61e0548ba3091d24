package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/repository"
)

func TestRepository_LockedUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New(dbPool(t))

	now := time.Now().UTC().Truncate(time.Microsecond)
	later := now.Add(2 * time.Hour)
	sooner := now.Add(time.Hour)
	expired := now.Add(-time.Hour)
	attempts := 7

	lockedLater := newUser(t, repo, func(u *entity.User) { u.LockedUntil = &later; u.FailedLoginAttempts = &attempts })
	lockedSooner := newUser(t, repo, func(u *entity.User) { u.LockedUntil = &sooner })
	lapsed := newUser(t, repo, func(u *entity.User) { u.LockedUntil = &expired })

	users, err := repo.LockedUsers(ctx, now)
	require.NoError(t, err)

	var ids []uuid.UUID

	for _, u := range users {
		switch u.ID {
		case lockedLater.ID, lockedSooner.ID, lapsed.ID:
			ids = append(ids, u.ID)
		}
	}

	require.Equal(t, []uuid.UUID{lockedSooner.ID, lockedLater.ID}, ids)

	require.NoError(t, repo.UnlockUser(ctx, lockedLater.ID))

	got, err := repo.UserByID(ctx, lockedLater.ID)
	require.NoError(t, err)
	require.Nil(t, got.LockedUntil)
	require.NotNil(t, got.FailedLoginAttempts)
	require.Zero(t, *got.FailedLoginAttempts)

	require.ErrorIs(t, repo.UnlockUser(ctx, uuid.Must(uuid.NewV4())), entity.ErrNotFound)
}

func TestRepository_UserByEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New(dbPool(t))

	u := newUser(t, repo)

	got, err := repo.UserByEmail(ctx, strings.ToUpper(u.Email))
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = repo.UserByEmail(ctx, "nobody-"+u.Email)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UserExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New(dbPool(t))

	cf := strings.ToUpper(strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16])
	u := newUser(t, repo, func(u *entity.User) { u.FiscalCode = &cf })

	exists, err := repo.UserExists(ctx, entity.UniqueFieldEmail, strings.ToUpper(u.Email), nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.UserExists(ctx, entity.UniqueFieldEmail, u.Email, &u.ID)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.UserExists(ctx, entity.UniqueFieldFiscalCode, strings.ToLower(cf), nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.UserExists(ctx, entity.UniqueFieldFiscalCode, "ZZZZZZ00Z00Z000Z", nil)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRepository_UserExists_IgnoresInactive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New(dbPool(t))

	cf := strings.ToUpper(strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16])
	disabled := newUser(t, repo, func(u *entity.User) { u.FiscalCode = &cf; u.IsActive = false })

	exists, err := repo.UserExists(ctx, entity.UniqueFieldEmail, disabled.Email, nil)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.UserExists(ctx, entity.UniqueFieldFiscalCode, cf, nil)
	require.NoError(t, err)
	require.False(t, exists)

	// an active account may reuse the identifiers of a disabled one
	active := newUser(t, repo, func(u *entity.User) { u.Email = disabled.Email; u.FiscalCode = &cf })

	exists, err = repo.UserExists(ctx, entity.UniqueFieldEmail, disabled.Email, nil)
	require.NoError(t, err)
	require.True(t, exists)

	got, err := repo.UserByEmail(ctx, disabled.Email)
	require.NoError(t, err)
	require.Equal(t, active.ID, got.ID)
}

func TestRepository_UserProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := dbPool(t)
	repo := repository.New(pool)

	companyID := uuid.Must(uuid.NewV4())
	exec(t, pool, `INSERT INTO companies (id, name) VALUES ($1, $2)`, companyID, "Teatro Nuovo")

	u := newUser(t, repo, func(u *entity.User) { u.CompanyID = &companyID })

	areaID := uuid.Must(uuid.NewV4())
	dutyID := uuid.Must(uuid.NewV4())
	exec(t, pool, `INSERT INTO areas (id, name, code) VALUES ($1, 'Stage', '001')`, areaID)
	exec(t, pool, `INSERT INTO duties (id, area_id, name, code) VALUES ($1, $2, 'Rigger', 'S001')`, dutyID, areaID)
	exec(t, pool, `INSERT INTO user_duties (user_id, area_id, duty_id) VALUES ($1, $2, $3)`, u.ID, areaID, dutyID)

	p, err := repo.UserProfile(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Teatro Nuovo", *p.CompanyName)

	duties, err := repo.UserDuties(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.UserDuty{{
		AreaID: areaID, AreaName: "Stage", DutyID: dutyID, DutyName: "Rigger", DutyCode: "S001",
	}}, duties)

	_, err = repo.UserProfile(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}
