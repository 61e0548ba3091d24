package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/config"
	"github.com/samandr77/microservices/scheduling/pkg/transport"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 1 << 10
)

// API delivers mail through a transactional email HTTP provider.
type API struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewAPI(cfg config.MailerConfig) *API {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	return &API{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		apiKey:  cfg.APIKey,
		from:    from,
	}
}

func (c *API) Provider() string {
	return config.MailerProviderAPI
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

func (c *API) Send(ctx context.Context, msg entity.Message) (string, error) {
	body := sendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
	}

	if msg.HTML {
		body.HTML = msg.Body
	} else {
		body.Text = msg.Body
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("mail api status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out sendEmailResponse

	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	slog.InfoContext(ctx, "email sent", "provider", c.Provider(), "message_id", out.ID)

	return out.ID, nil
}
