package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type NotificationType string

const (
	NotificationMissingHours           NotificationType = "MISSING_HOURS"
	NotificationShiftAssigned          NotificationType = "SHIFT_ASSIGNED"
	NotificationShiftChanged           NotificationType = "SHIFT_CHANGED"
	NotificationUnavailabilityApproved NotificationType = "UNAVAILABILITY_APPROVED"
	NotificationUnavailabilityRejected NotificationType = "UNAVAILABILITY_REJECTED"
	NotificationUnavailabilityPending  NotificationType = "UNAVAILABILITY_PENDING"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	Metadata  json.RawMessage  `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type NotificationsFilter struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      uint64
}
