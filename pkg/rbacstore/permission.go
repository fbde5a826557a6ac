package rbacstore

import (
	"context"

	"github.com/google/uuid"
)

// CreatePermission stores a new permission under a freshly generated identifier.
func (s *Store) CreatePermission(ctx context.Context, systemName, displayName, description string) (Permission, error) {
	if err := enter(ctx); err != nil {
		return Permission{}, err
	}
	if err := checkNames(systemName, displayName); err != nil {
		return Permission{}, err
	}

	id, err := s.generateID()
	if err != nil {
		return Permission{}, err
	}

	permission := Permission{
		ID:          id,
		SystemName:  systemName,
		DisplayName: displayName,
		Description: description,
	}
	if err := s.permissions.insert(id, permission); err != nil {
		return Permission{}, err
	}
	return permission, nil
}

// UpdatePermission replaces the stored permission. See UpdateRole for conflict semantics.
func (s *Store) UpdatePermission(ctx context.Context, permission Permission) (Permission, error) {
	if err := enter(ctx); err != nil {
		return Permission{}, err
	}
	if err := checkID("id", permission.ID); err != nil {
		return Permission{}, err
	}
	if err := checkNames(permission.SystemName, permission.DisplayName); err != nil {
		return Permission{}, err
	}
	return s.permissions.replace(permission.ID, permission)
}

// DeletePermission removes the permission. Associations are not cascaded.
func (s *Store) DeletePermission(ctx context.Context, id uuid.UUID) error {
	if err := enter(ctx); err != nil {
		return err
	}
	if err := checkID("id", id); err != nil {
		return err
	}
	return s.permissions.remove(id)
}

func (s *Store) DeletePermissionEntity(ctx context.Context, permission Permission) error {
	return s.DeletePermission(ctx, permission.ID)
}

// GetPermission returns the permission or ErrNotFound.
func (s *Store) GetPermission(ctx context.Context, id uuid.UUID) (Permission, error) {
	if err := enter(ctx); err != nil {
		return Permission{}, err
	}
	if err := checkID("id", id); err != nil {
		return Permission{}, err
	}
	return s.permissions.get(id)
}

// ExistsPermission reports whether the permission is stored.
func (s *Store) ExistsPermission(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := enter(ctx); err != nil {
		return false, err
	}
	if err := checkID("id", id); err != nil {
		return false, err
	}
	return s.permissions.exists(id), nil
}
