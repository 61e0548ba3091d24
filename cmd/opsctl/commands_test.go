package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/service"
)

type fakeOps struct {
	unlocked []string
	accounts []entity.LockedAccount
	report   service.CodesReport
	err      error
}

func (f *fakeOps) UnlockAccount(_ context.Context, email string) error {
	f.unlocked = append(f.unlocked, email)
	return f.err
}

func (f *fakeOps) ListLockedAccounts(_ context.Context, _ time.Time) ([]entity.LockedAccount, error) {
	return f.accounts, f.err
}

func (f *fakeOps) ReassignCodes(_ context.Context) (service.CodesReport, error) {
	return f.report, f.err
}

func run(t *testing.T, s opsService, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCommand(s, &out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestUnlockAccount(t *testing.T) {
	t.Parallel()

	ops := &fakeOps{}

	out, err := run(t, ops, "unlock-account", "--email", " Mario.Rossi@Example.com ")
	require.NoError(t, err)
	require.Equal(t, []string{" Mario.Rossi@Example.com "}, ops.unlocked)
	require.Contains(t, out, "mario.rossi@example.com unlocked")
}

func TestUnlockAccount_RequiresEmail(t *testing.T) {
	t.Parallel()

	ops := &fakeOps{}

	_, err := run(t, ops, "unlock-account")
	require.ErrorContains(t, err, "--email is required")
	require.Empty(t, ops.unlocked)
}

func TestUnlockAccount_NotFound(t *testing.T) {
	t.Parallel()

	ops := &fakeOps{err: entity.ErrNotFound}

	_, err := run(t, ops, "unlock-account", "--email", "ghost@example.com")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLockedAccounts(t *testing.T) {
	t.Parallel()

	until := "2026-01-02T10:00:00Z"
	ops := &fakeOps{accounts: []entity.LockedAccount{{
		ID:                  uuid.Must(uuid.NewV4()),
		Email:               "locked@example.com",
		LockedUntil:         &until,
		FailedLoginAttempts: 5,
	}}}

	out, err := run(t, ops, "locked-accounts")
	require.NoError(t, err)

	var got []entity.LockedAccount
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, ops.accounts, got)
}

func TestReassignCodes(t *testing.T) {
	t.Parallel()

	ops := &fakeOps{report: service.CodesReport{AreasUpdated: 2, DutiesUpdated: 7}}

	out, err := run(t, ops, "reassign-codes")
	require.NoError(t, err)
	require.JSONEq(t, `{"areasUpdated":2,"dutiesUpdated":7}`, out)
}
