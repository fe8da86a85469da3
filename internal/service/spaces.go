package service

import (
	"context"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/permission"
)

func (s *Service) Spaces(ctx context.Context) ([]entity.Space, error) {
	checker, _, err := s.checker()
	if err != nil {
		return nil, err
	}

	if !checker.HasPermission(permission.ModuleSpaces, permission.ActionView) {
		return nil, entity.ErrPermissionDenied
	}

	return s.api.Spaces(ctx)
}

func (s *Service) GetSpace(ctx context.Context, id int) (entity.Space, error) {
	checker, _, err := s.checker()
	if err != nil {
		return entity.Space{}, err
	}

	if !checker.HasPermission(permission.ModuleSpaces, permission.ActionView) {
		return entity.Space{}, entity.ErrPermissionDenied
	}

	return s.api.Space(ctx, id)
}

func (s *Service) CreateSpace(ctx context.Context, sp entity.Space) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleSpaces, permission.ActionCreate) {
		return entity.ErrPermissionDenied
	}

	if err := ValidateSpace(sp); err != nil {
		return err
	}

	return s.api.CreateSpace(ctx, sp)
}

func (s *Service) UpdateSpace(ctx context.Context, id int, sp entity.Space) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleSpaces, permission.ActionEdit) {
		return entity.ErrPermissionDenied
	}

	if err := ValidateSpace(sp); err != nil {
		return err
	}

	return s.api.UpdateSpace(ctx, id, sp)
}

func (s *Service) DeleteSpace(ctx context.Context, id int) error {
	checker, _, err := s.checker()
	if err != nil {
		return err
	}

	if !checker.HasPermission(permission.ModuleSpaces, permission.ActionDelete) {
		return entity.ErrPermissionDenied
	}

	return s.api.DeleteSpace(ctx, id)
}
