package service

import (
	"context"

	"github.com/ucampus/reservas-cli/internal/entity"
)

// UserHistory returns the full reservation trail of one user. Users may
// always read their own trail; anyone else's requires admin.
func (s *Service) UserHistory(ctx context.Context, userID int) ([]entity.Reservation, error) {
	checker, user, err := s.checker()
	if err != nil {
		return nil, err
	}

	if userID != user.ID && !checker.IsAdmin() {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.UserHistory(ctx, userID)
}

// SpaceHistory returns everything ever booked in a space. Admin only.
func (s *Service) SpaceHistory(ctx context.Context, spaceID int) ([]entity.Reservation, error) {
	checker, _, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.IsAdmin() {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.SpaceHistory(ctx, spaceID)
}
