package mailer

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/config"
)

type Mailer interface {
	Send(ctx context.Context, msg entity.Message) (string, error)
	Provider() string
}

// New picks the delivery backend configured by MAILER_PROVIDER.
func New(cfg config.MailerConfig) (Mailer, error) {
	switch cfg.Provider {
	case config.MailerProviderSMTP:
		return NewSMTP(cfg), nil
	case config.MailerProviderAPI:
		return NewAPI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown mailer provider %q", cfg.Provider)
	}
}
