package service_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/scheduling/internal/mocks"
	"github.com/samandr77/microservices/scheduling/internal/service"
)

type testService struct {
	repo   *mocks.MockRepository
	mailer *mocks.MockMailer
	s      *service.Service
}

func newTestService(t *testing.T, devMode bool) *testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	return &testService{
		repo:   repo,
		mailer: mailer,
		s:      service.New(repo, mailer, devMode),
	}
}
