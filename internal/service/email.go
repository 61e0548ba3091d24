package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

const testEmailSubject = "Staff scheduling: test email"

// SendTestEmail delivers a fixed message through the configured mailer. Development only.
func (s *Service) SendTestEmail(ctx context.Context, to string) (entity.DeliveryReport, error) {
	if !s.devMode {
		return entity.DeliveryReport{}, fmt.Errorf("test email outside development: %w", entity.ErrForbidden)
	}

	addr, err := mail.ParseAddress(to)
	if err != nil {
		return entity.DeliveryReport{}, fmt.Errorf("recipient %q: %w", to, entity.ErrBadRequest)
	}

	messageID, err := s.mailer.Send(ctx, entity.Message{
		To:      addr.Address,
		Subject: testEmailSubject,
		Body:    "<p>This is a test message from the staff scheduling service.</p>",
		HTML:    true,
	})
	if err != nil {
		return entity.DeliveryReport{}, fmt.Errorf("send test email: %w", err)
	}

	return entity.DeliveryReport{
		OK:        true,
		Provider:  s.mailer.Provider(),
		To:        addr.Address,
		MessageID: messageID,
	}, nil
}
