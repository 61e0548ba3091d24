package service

import (
	"context"
	"fmt"
)

// KeepWarm issues a trivial query so the database stays resumed.
func (s *Service) KeepWarm(ctx context.Context) error {
	err := s.repo.Ping(ctx)
	if err != nil {
		return fmt.Errorf("keep warm: %w", err)
	}

	return nil
}
