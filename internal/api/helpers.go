package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

type ResponseError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

// SendErr writes an error body. Only server errors carry the underlying error as details.
func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	body := ResponseError{Error: msg}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)

		if err != nil {
			body.Details = err.Error()
		}
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.ErrorContext(ctx, "encode error response", "error", err)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

func sendOK(ctx context.Context, w http.ResponseWriter) {
	SendJSON(ctx, w, http.StatusOK, OKResponse{OK: true})
}

func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgForbidden)
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgNotFound)
	case errors.Is(err, entity.ErrBadRequest):
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}
