package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

func (s *Service) ListWorkdayAssignments(ctx context.Context, workdayID uuid.UUID) ([]entity.WorkdayAssignment, error) {
	assignments, err := s.repo.WorkdayAssignments(ctx, workdayID)
	if err != nil {
		return nil, fmt.Errorf("workday assignments: %w", err)
	}

	return assignments, nil
}

// CountPendingUnavailabilities returns the number of requests awaiting approval.
// Approvers who are also workers see nothing while they act in worker mode.
func (s *Service) CountPendingUnavailabilities(
	ctx context.Context, p entity.Principal, mode entity.WorkMode) (int, error) {
	if !entity.HasPermission(p.Role, entity.PermissionApproveUnavailability) {
		return 0, entity.ErrForbidden
	}

	if p.IsWorker && mode == entity.WorkModeWorker && (p.Role == entity.RoleAdmin || p.Role == entity.RoleResponsabile) {
		return 0, nil
	}

	count, err := s.repo.CountUnavailabilitiesByStatus(ctx, entity.UnavailabilityPending)
	if err != nil {
		return 0, fmt.Errorf("count pending unavailabilities: %w", err)
	}

	return count, nil
}

func (s *Service) CurrentUserProfile(ctx context.Context, callerID uuid.UUID) (entity.UserProfile, error) {
	profile, err := s.repo.UserProfile(ctx, callerID)
	if err != nil {
		return entity.UserProfile{}, fmt.Errorf("user profile: %w", err)
	}

	duties, err := s.repo.UserDuties(ctx, callerID)
	if err != nil {
		return entity.UserProfile{}, fmt.Errorf("user duties: %w", err)
	}

	profile.Areas = entity.GroupUserDuties(duties)

	return profile, nil
}
