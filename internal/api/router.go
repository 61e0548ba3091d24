package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/scheduling/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Get("/users/check-email", h.CheckEmail)
			r.Get("/users/check-codice-fiscale", h.CheckFiscalCode)

			r.Get("/test-email", h.TestEmail)
		})

		r.With(mw.CronAuth).Get("/cron/keep-warm", h.KeepWarm)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth, mw.WorkMode)

			r.Get("/users/me", h.Me)
			r.Get("/workdays/{id}/assignments", h.WorkdayAssignments)

			r.Get("/notifications", h.ListNotifications)
			r.Get("/notifications/missing-hours", h.MissingHours)
			r.Post("/notifications/mark-all-read", h.MarkAllNotificationsRead)
			r.Patch("/notifications/{id}", h.MarkNotificationRead)

			r.With(mw.RequirePermission(entity.PermissionApproveUnavailability)).
				Get("/unavailabilities/pending-count", h.PendingUnavailabilities)

			r.Route("/settings/technical", func(r chi.Router) {
				r.Use(mw.RequirePermission(entity.PermissionTechnicalSettings))

				r.Get("/locked-accounts", h.LockedAccounts)
				r.Post("/verify-password", h.VerifyPassword)
			})
		})
	})

	return router
}
