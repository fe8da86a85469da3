package service

import (
	"context"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
)

func (s *Service) Reservations(ctx context.Context) ([]entity.Reservation, error) {
	checker, _, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.HasPermission(permission.ModuleReservations, permission.ActionView) {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.Reservations(ctx)
}

// MyReservations lists only the session user's bookings.
func (s *Service) MyReservations(ctx context.Context) ([]entity.Reservation, error) {
	checker, user, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.HasPermission(permission.ModuleReservations, permission.ActionView) {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.ReservationsByUser(ctx, user.ID)
}

// CreateReservation books a space for the session user, or for another
// user when the actor is an admin. New reservations always start
// Pendiente and may not lie in the past.
func (s *Service) CreateReservation(ctx context.Context, r entity.Reservation) error {
	checker, user, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleReservations, permission.ActionCreate) {
		return entity.ErrPermissionDenied
	}

	if r.UserID != 0 && r.UserID != user.ID && !checker.IsAdmin() {
		return entity.ErrPermissionDenied
	}

	if r.SpaceID == 0 {
		return entity.ErrSpaceRequired
	}

	if err := ValidateWindow(r.Date, r.StartTime, r.EndTime, true); err != nil {
		return err
	}

	r.Status = entity.StatusPending

	return s.api.CreateReservation(ctx, r, user)
}

func (s *Service) UpdateReservation(ctx context.Context, id int, r entity.Reservation) error {
	checker, user, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleReservations, permission.ActionEdit) {
		return entity.ErrPermissionDenied
	}

	if r.SpaceID == 0 {
		return entity.ErrSpaceRequired
	}

	// Existing bookings may sit in the past; only the interval order
	// is re-checked on edit.
	if err := ValidateWindow(r.Date, r.StartTime, r.EndTime, false); err != nil {
		return err
	}

	return s.api.UpdateReservation(ctx, id, r, user)
}

func (s *Service) DeleteReservation(ctx context.Context, id int) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleReservations, permission.ActionDelete) {
		return entity.ErrPermissionDenied
	}

	return s.api.DeleteReservation(ctx, id)
}

// ChangeReservationStatus approves or rejects a pending reservation.
// Only admins see these actions, and only Pendiente may move; both
// outcomes are terminal.
func (s *Service) ChangeReservationStatus(ctx context.Context, id int, to entity.Status) error {
	checker, user, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.IsAdmin() {
		return entity.ErrPermissionDenied
	}

	if !to.Valid() {
		return entity.ErrStatusUnknown
	}

	current, err := s.api.Reservation(ctx, id)
	if err != nil {
		return err
	}

	if !current.Status.CanTransition(to) {
		return entity.ErrStatusTransition
	}

	current.Status = to

	return s.api.UpdateReservation(ctx, id, current, user)
}
