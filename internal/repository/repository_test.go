package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/repository"
	"github.com/samandr77/microservices/scheduling/pkg/postgres"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() { migrateErr = postgres.UpMigrations(dsn) })
	require.NoError(t, migrateErr)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func newUser(t *testing.T, repo *repository.Repository, opts ...func(*entity.User)) entity.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.Must(uuid.NewV4())

	u := entity.User{
		ID:        id,
		Email:     id.String() + "@example.com",
		Name:      "Mario",
		Surname:   "Rossi",
		Role:      entity.RoleWorker,
		IsWorker:  true,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, opt := range opts {
		opt(&u)
	}

	require.NoError(t, repo.CreateUser(context.Background(), u))

	return u
}

func exec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()

	_, err := pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func TestRepository_Ping(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	require.NoError(t, repo.Ping(context.Background()))
}
