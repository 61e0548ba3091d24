package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type UnavailabilityStatus string

const (
	UnavailabilityPending  UnavailabilityStatus = "PENDING_APPROVAL"
	UnavailabilityApproved UnavailabilityStatus = "APPROVED"
	UnavailabilityRejected UnavailabilityStatus = "REJECTED"
)

type Unavailability struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	Status    UnavailabilityStatus `json:"status"`
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	Reason    string               `json:"reason"`
	CreatedAt time.Time            `json:"createdAt"`
}
