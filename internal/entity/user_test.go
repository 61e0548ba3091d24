package entity_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func TestUser_ToLockedAccount(t *testing.T) {
	t.Parallel()

	rome := time.FixedZone("CET", 3600)
	locked := time.Date(2025, 3, 1, 11, 0, 0, 0, rome)
	hash := "$2a$10$abcdef"

	acc := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "a@example.com",
		PasswordHash: &hash,
		LockedUntil:  &locked,
	}.ToLockedAccount()

	require.Equal(t, "2025-03-01T10:00:00Z", *acc.LockedUntil)
	require.Zero(t, acc.FailedLoginAttempts)

	acc = entity.User{}.ToLockedAccount()
	require.Nil(t, acc.LockedUntil)
}

func TestGroupUserDuties(t *testing.T) {
	t.Parallel()

	stage := uuid.Must(uuid.NewV4())
	audio := uuid.Must(uuid.NewV4())

	got := entity.GroupUserDuties([]entity.UserDuty{
		{AreaID: audio, AreaName: "Audio", DutyName: "Mixer"},
		{AreaID: stage, AreaName: "Stage", DutyName: "Rigger"},
		{AreaID: audio, AreaName: "Audio", DutyName: "Mic runner"},
	})

	require.Len(t, got, 2)
	require.Equal(t, "Audio", got[0].Name)
	require.Equal(t, []string{"Mixer", "Mic runner"}, []string{got[0].Duties[0].Name, got[0].Duties[1].Name})
	require.Equal(t, "Stage", got[1].Name)

	require.NotNil(t, entity.GroupUserDuties(nil))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "anna@example.com", entity.NormalizeEmail("  Anna@Example.COM "))
	require.Equal(t, "RSSMRA80A01H501U", entity.NormalizeFiscalCode(" rssmra80a01h501u\n"))
}

func TestCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "007", entity.AreaCode(7))
	require.Equal(t, "123", entity.AreaCode(123))
	require.Equal(t, "S001", entity.DutyCode("stage", 1))
	require.Equal(t, "É012", entity.DutyCode(" électricité", 12))
	require.Equal(t, "X003", entity.DutyCode("", 3))
}
