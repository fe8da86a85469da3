package service

import (
	"context"
	"strings"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
)

func (s *Service) Roles(ctx context.Context) ([]entity.Role, error) {
	checker, _, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.HasPermission(permission.ModuleRoles, permission.ActionView) {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.Roles(ctx)
}

func (s *Service) CreateRole(ctx context.Context, name string) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleRoles, permission.ActionCreate) {
		return entity.ErrPermissionDenied
	}

	if strings.TrimSpace(name) == "" {
		return entity.ErrNameRequired
	}

	return s.api.CreateRole(ctx, name)
}

func (s *Service) UpdateRole(ctx context.Context, id int, name string) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleRoles, permission.ActionEdit) {
		return entity.ErrPermissionDenied
	}

	if strings.TrimSpace(name) == "" {
		return entity.ErrNameRequired
	}

	return s.api.UpdateRole(ctx, id, name)
}

func (s *Service) DeleteRole(ctx context.Context, id int) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleRoles, permission.ActionDelete) {
		return entity.ErrPermissionDenied
	}

	return s.api.DeleteRole(ctx, id)
}
