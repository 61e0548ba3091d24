package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID                  uuid.UUID
	Email               string
	Name                string
	Surname             string
	Code                string
	FiscalCode          *string
	PasswordHash        *string
	Role                Role
	IsWorker            bool
	IsActive            bool
	LockedUntil         *time.Time
	FailedLoginAttempts *int
	CompanyID           *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type UserProfile struct {
	ID          uuid.UUID    `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Surname     string       `json:"surname"`
	Code        string       `json:"code"`
	FiscalCode  *string      `json:"fiscalCode"`
	Role        Role         `json:"role"`
	IsWorker    bool         `json:"isWorker"`
	IsActive    bool         `json:"isActive"`
	CompanyID   *uuid.UUID   `json:"companyId"`
	CompanyName *string      `json:"companyName"`
	Areas       []AreaDuties `json:"areas"`
}

type AreaDuties struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Duties []DutyRef `json:"duties"`
}

type DutyRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

// UserDuty is one row of the user to area/duty relation.
type UserDuty struct {
	AreaID   uuid.UUID
	AreaName string
	DutyID   uuid.UUID
	DutyName string
	DutyCode string
}

// GroupUserDuties folds relation rows into per-area lists, keeping first-seen order.
func GroupUserDuties(rows []UserDuty) []AreaDuties {
	areas := make([]AreaDuties, 0)
	idx := make(map[uuid.UUID]int)

	for _, row := range rows {
		i, ok := idx[row.AreaID]
		if !ok {
			i = len(areas)
			idx[row.AreaID] = i
			areas = append(areas, AreaDuties{ID: row.AreaID, Name: row.AreaName, Duties: []DutyRef{}})
		}

		areas[i].Duties = append(areas[i].Duties, DutyRef{ID: row.DutyID, Name: row.DutyName, Code: row.DutyCode})
	}

	return areas
}

type LockedAccount struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Surname             string    `json:"surname"`
	LockedUntil         *string   `json:"lockedUntil"`
	FailedLoginAttempts int       `json:"failedLoginAttempts"`
}

// ToLockedAccount projects a user without credential material.
func (u User) ToLockedAccount() LockedAccount {
	acc := LockedAccount{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
	}

	if u.LockedUntil != nil {
		s := u.LockedUntil.UTC().Format(time.RFC3339)
		acc.LockedUntil = &s
	}

	if u.FailedLoginAttempts != nil {
		acc.FailedLoginAttempts = *u.FailedLoginAttempts
	}

	return acc
}

type UniqueField string

const (
	UniqueFieldEmail      UniqueField = "email"
	UniqueFieldFiscalCode UniqueField = "fiscalCode"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeFiscalCode(cf string) string {
	return strings.ToUpper(strings.TrimSpace(cf))
}
