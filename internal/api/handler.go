package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	KeepWarm(ctx context.Context) error

	ListNotifications(ctx context.Context, callerID uuid.UUID, unreadOnly bool) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, callerID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, callerID uuid.UUID, notificationType *entity.NotificationType) error
	UserHasMissingShifts(ctx context.Context, userID uuid.UUID, dates []string) (bool, error)

	ListLockedAccounts(ctx context.Context, now time.Time) ([]entity.LockedAccount, error)
	VerifyPassword(ctx context.Context, userID uuid.UUID, candidate string) error
	CheckUnique(ctx context.Context, field entity.UniqueField, value string, excludeID *uuid.UUID) (bool, error)

	ListWorkdayAssignments(ctx context.Context, workdayID uuid.UUID) ([]entity.WorkdayAssignment, error)
	CountPendingUnavailabilities(ctx context.Context, p entity.Principal, mode entity.WorkMode) (int, error)
	CurrentUserProfile(ctx context.Context, callerID uuid.UUID) (entity.UserProfile, error)

	SendTestEmail(ctx context.Context, to string) (entity.DeliveryReport, error)
}

// @title Staff Scheduling API
// @version 1.0
// @description Scheduling backend for theater staff: accounts, shifts, unavailabilities and notifications.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK\n"))
}

type KeepWarmResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// KeepWarm godoc
// @Summary      Keep the database warm
// @Description  Called by the external cron with CRON_SECRET as bearer token or ?secret=.
// @Tags         cron
// @Produce      json
// @Param        secret query string false "Cron secret"
// @Success      200 {object} KeepWarmResponse
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /cron/keep-warm [get]
func (h *Handler) KeepWarm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.KeepWarm(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Database ping failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, KeepWarmResponse{OK: true, Status: "warm"})
}

// ListNotifications godoc
// @Summary      Own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread query bool false "Only unread"
// @Success      200 {array} entity.Notification
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /notifications [get]
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	notifications, err := h.s.ListNotifications(ctx, p.ID, r.URL.Query().Get("unread") == "true")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, notifications)
}

type MissingShiftsResponse struct {
	HasMissingShifts bool `json:"hasMissingShifts"`
}

// MissingHours godoc
// @Summary      Whether the caller has shifts without logged hours
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        dates query string true "Comma separated YYYY-MM-DD dates"
// @Success      200 {object} MissingShiftsResponse
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /notifications/missing-hours [get]
func (h *Handler) MissingHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	var dates []string

	for _, d := range strings.Split(r.URL.Query().Get("dates"), ",") {
		if d = strings.TrimSpace(d); d != "" {
			dates = append(dates, d)
		}
	}

	missing, err := h.s.UserHasMissingShifts(ctx, p.ID, dates)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MissingShiftsResponse{HasMissingShifts: missing})
}

// MarkNotificationRead godoc
// @Summary      Mark an own notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200 {object} OKResponse
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /notifications/{id} [patch]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	err = h.s.MarkNotificationRead(ctx, id, p.ID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	sendOK(ctx, w)
}

// MarkAllNotificationsRead godoc
// @Summary      Mark all own unread notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Notification type"
// @Success      200 {object} OKResponse
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /notifications/mark-all-read [post]
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	var notificationType *entity.NotificationType

	if t := r.URL.Query().Get("type"); t != "" {
		nt := entity.NotificationType(t)
		notificationType = &nt
	}

	err = h.s.MarkAllNotificationsRead(ctx, p.ID, notificationType)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	sendOK(ctx, w)
}

// LockedAccounts godoc
// @Summary      Accounts currently locked out
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entity.LockedAccount
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /settings/technical/locked-accounts [get]
func (h *Handler) LockedAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.s.ListLockedAccounts(ctx, time.Now())
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, accounts)
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPassword godoc
// @Summary      Re-check the caller's password before a sensitive action
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body VerifyPasswordRequest true "Password"
// @Success      200 {object} OKResponse
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /settings/technical/verify-password [post]
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	var req VerifyPasswordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	err = h.s.VerifyPassword(ctx, p.ID, req.Password)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	sendOK(ctx, w)
}

// TestEmail godoc
// @Summary      Send a test email (development only)
// @Tags         dev
// @Produce      json
// @Param        to query string true "Recipient"
// @Success      200 {object} entity.DeliveryReport
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /test-email [get]
func (h *Handler) TestEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.s.SendTestEmail(ctx, r.URL.Query().Get("to"))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

type CountResponse struct {
	Count int `json:"count"`
}

// PendingUnavailabilities godoc
// @Summary      Number of unavailability requests awaiting approval
// @Tags         unavailabilities
// @Produce      json
// @Security     BearerAuth
// @Param        X-Work-Mode header string false "worker or approver"
// @Success      200 {object} CountResponse
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /unavailabilities/pending-count [get]
func (h *Handler) PendingUnavailabilities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	count, err := h.s.CountPendingUnavailabilities(ctx, p, entity.WorkModeFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CountResponse{Count: count})
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// CheckFiscalCode godoc
// @Summary      Whether a fiscal code is free
// @Tags         users
// @Produce      json
// @Param        cf query string true "Fiscal code"
// @Param        excludeId query string false "User to ignore"
// @Success      200 {object} AvailabilityResponse
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users/check-codice-fiscale [get]
func (h *Handler) CheckFiscalCode(w http.ResponseWriter, r *http.Request) {
	h.checkUnique(w, r, entity.UniqueFieldFiscalCode, "cf")
}

// CheckEmail godoc
// @Summary      Whether an email is free
// @Tags         users
// @Produce      json
// @Param        email query string true "Email"
// @Param        excludeId query string false "User to ignore"
// @Success      200 {object} AvailabilityResponse
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users/check-email [get]
func (h *Handler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	h.checkUnique(w, r, entity.UniqueFieldEmail, "email")
}

func (h *Handler) checkUnique(w http.ResponseWriter, r *http.Request, field entity.UniqueField, param string) {
	ctx := r.Context()
	q := r.URL.Query()

	var excludeID *uuid.UUID

	if raw := q.Get("excludeId"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
			return
		}

		excludeID = &id
	}

	available, err := h.s.CheckUnique(ctx, field, q.Get(param), excludeID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, AvailabilityResponse{Available: available})
}

// Me godoc
// @Summary      Caller profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} entity.UserProfile
// @Failure      401 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	profile, err := h.s.CurrentUserProfile(ctx, p.ID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, profile)
}

// WorkdayAssignments godoc
// @Summary      Assignments of a workday
// @Tags         workdays
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workday ID"
// @Success      200 {array} entity.WorkdayAssignment
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /workdays/{id}/assignments [get]
func (h *Handler) WorkdayAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	assignments, err := h.s.ListWorkdayAssignments(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, assignments)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", name, entity.ErrBadRequest)
	}

	return id, nil
}
