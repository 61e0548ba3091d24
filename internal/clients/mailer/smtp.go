package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/config"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTP struct {
	cfg    config.MailerConfig
	dialer dialer
}

func NewSMTP(cfg config.MailerConfig) *SMTP {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	d.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &SMTP{
		cfg:    cfg,
		dialer: d,
	}
}

func (c *SMTP) Provider() string {
	return config.MailerProviderSMTP
}

func (c *SMTP) Send(ctx context.Context, msg entity.Message) (string, error) {
	messageID := fmt.Sprintf("<%s@scheduling>", uuid.Must(uuid.NewV4()))

	m := c.buildMessage(msg, messageID)

	err := c.dialer.DialAndSend(m)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	slog.InfoContext(ctx, "email sent", "provider", c.Provider(), "message_id", messageID)

	return messageID, nil
}

func (c *SMTP) buildMessage(msg entity.Message, messageID string) *gomail.Message {
	m := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	m.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)

	if msg.HTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	return m
}
