package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	Ping(ctx context.Context) error

	NotificationByID(ctx context.Context, id uuid.UUID) (entity.Notification, error)
	NotificationsByFilter(ctx context.Context, filter entity.NotificationsFilter) ([]entity.Notification, error)
	CreateNotification(ctx context.Context, n entity.Notification) error
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, notificationType *entity.NotificationType) (int64, error)

	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserProfile(ctx context.Context, id uuid.UUID) (entity.UserProfile, error)
	UserDuties(ctx context.Context, userID uuid.UUID) ([]entity.UserDuty, error)
	UserExists(ctx context.Context, field entity.UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	LockedUsers(ctx context.Context, now time.Time) ([]entity.User, error)
	UnlockUser(ctx context.Context, id uuid.UUID) error

	WorkdayAssignments(ctx context.Context, workdayID uuid.UUID) ([]entity.WorkdayAssignment, error)
	UserAssignmentsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.UserAssignment, error)
	CountUnavailabilitiesByStatus(ctx context.Context, status entity.UnavailabilityStatus) (int, error)

	Areas(ctx context.Context) ([]entity.Area, error)
	Duties(ctx context.Context) ([]entity.Duty, error)
	UpdateAreaCodes(ctx context.Context, updates []entity.CodeUpdate) error
	UpdateDutyCodes(ctx context.Context, updates []entity.CodeUpdate) error
}

type Mailer interface {
	Send(ctx context.Context, msg entity.Message) (string, error)
	Provider() string
}

type Service struct {
	repo    Repository
	mailer  Mailer
	devMode bool
}

func New(repo Repository, mailer Mailer, devMode bool) *Service {
	return &Service{
		repo:    repo,
		mailer:  mailer,
		devMode: devMode,
	}
}
