package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type WorkdayAssignment struct {
	ID          uuid.UUID          `json:"id"`
	WorkdayID   uuid.UUID          `json:"workdayId"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	User        AssignmentUser     `json:"user"`
	TaskType    AssignmentTaskType `json:"taskType"`
	LoggedHours decimal.Decimal    `json:"loggedHours"`
}

type AssignmentUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type AssignmentTaskType struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	Color string    `json:"color"`
}

// UserAssignment is an assignment of one user together with the number of time entries logged for it.
type UserAssignment struct {
	ID           uuid.UUID
	WorkdayID    uuid.UUID
	WorkdayDate  time.Time
	EntriesCount int
}

type TimeEntry struct {
	ID           uuid.UUID       `json:"id"`
	AssignmentID uuid.UUID       `json:"assignmentId"`
	Hours        decimal.Decimal `json:"hours"`
	CreatedAt    time.Time       `json:"createdAt"`
}

const DateLayout = time.DateOnly
