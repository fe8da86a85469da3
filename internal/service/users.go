package service

import (
	"context"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
)

// Users lists accounts. Without the viewAll grant the listing collapses
// to the caller's own record, so non-admin roles still see their
// profile without a separate endpoint.
func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	checker, user, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.HasPermission(permission.ModuleUsers, permission.ActionView) {
		return nil, entity.ErrPermissionDenied
	}

	all, err := s.api.Users(ctx)
	if err != nil {
		return nil, err
	}

	if checker.HasPermission(permission.ModuleUsers, permission.ActionViewAll) {
		return all, nil
	}

	own := make([]entity.User, 0, 1)

	for _, u := range all {
		if user.Matches(u) {
			own = append(own, u)
		}
	}

	return own, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (entity.User, error) {
	checker, _, err := s.checker()
	if err != nil {
		return entity.User{}, err
	}

	u, err := s.api.User(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if !checker.CanAccessRecord(permission.ModuleUsers, u, permission.ActionView) {
		return entity.User{}, entity.ErrPermissionDenied
	}

	return u, nil
}

// CreateUser provisions an account with an explicit role. Admin only;
// self-registration goes through the session manager instead.
func (s *Service) CreateUser(ctx context.Context, u entity.User, password string) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleUsers, permission.ActionCreate) {
		return entity.ErrPermissionDenied
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if password == "" {
		return entity.ErrPasswordRequired
	}

	return s.api.CreateUser(ctx, u, password)
}

// UpdateUser edits a profile. Non-admins reach only their own record;
// a self-edit also refreshes the stored session so the CLI does not
// keep showing stale profile data.
func (s *Service) UpdateUser(ctx context.Context, id int, u entity.User, password string) error {
	checker, current, err := s.checker()
	if err != nil {
		return err
	}

	u.ID = id

	if !checker.CanAccessRecord(permission.ModuleUsers, u, permission.ActionEdit) {
		return entity.ErrPermissionDenied
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if err := s.api.UpdateUser(ctx, id, u, password); err != nil {
		return err
	}

	if current.Matches(u) {
		// Role edits only stick for admins; the backend ignores the
		// field otherwise, so mirror that locally.
		if !checker.IsAdmin() {
			u.Role = current.Role
		}

		if err := s.sessions.UpdateCurrent(u); err != nil {
			s.log.Warn("refresh session after profile edit", "error", err)
		}
	}

	return nil
}

// DeleteUser removes an account. Deleting users is admin territory,
// own record included.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleUsers, permission.ActionDelete) {
		return entity.ErrPermissionDenied
	}

	return s.api.DeleteUser(ctx, id)
}
