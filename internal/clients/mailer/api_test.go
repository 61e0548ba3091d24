package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/internal/clients/mailer"
	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/config"
)

func apiConfig(url string) config.MailerConfig {
	return config.MailerConfig{
		Provider:      config.MailerProviderAPI,
		From:          "noreply@example.com",
		FromName:      "Scheduling",
		APIURL:        url + "/",
		APIKey:        "key-123",
		Timeout:       5 * time.Second,
		RetryAttempts: 2,
	}
}

func TestAPI_SendRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		if r.URL.Path != "/emails" || r.Header.Get("Authorization") != "Bearer key-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["html"] != "<p>hi</p>" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		_, _ = w.Write([]byte(`{"id":"em_42"}`))
	}))
	t.Cleanup(server.Close)

	c := mailer.NewAPI(apiConfig(server.URL))

	id, err := c.Send(context.Background(), entity.Message{To: "ops@example.com", Subject: "Hi", Body: "<p>hi</p>", HTML: true})
	require.NoError(t, err)
	require.Equal(t, "em_42", id)
	require.Equal(t, int32(2), calls.Load())
}

func TestAPI_SendRejected(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to"}`))
	}))
	t.Cleanup(server.Close)

	c := mailer.NewAPI(apiConfig(server.URL))

	_, err := c.Send(context.Background(), entity.Message{To: "x", Body: "plain"})
	require.ErrorContains(t, err, "422")
	require.Equal(t, int32(1), calls.Load())
}
