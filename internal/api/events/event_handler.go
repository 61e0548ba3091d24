package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

type Service interface {
	CreateNotification(ctx context.Context, n entity.Notification) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type NotificationCreatedEvent struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"userId"`
	Type      entity.NotificationType `json:"type"`
	Metadata  json.RawMessage         `json:"metadata,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NotificationCreated stores a notification produced by another part of the system.
// Redelivered events carry the same id and are ignored by storage.
func (h *EventHandler) NotificationCreated(ctx context.Context, msg kafka.Message) error {
	var event NotificationCreatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.CreateNotification(ctx, entity.Notification{
		ID:        event.ID,
		UserID:    event.UserID,
		Type:      event.Type,
		Metadata:  event.Metadata,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}
