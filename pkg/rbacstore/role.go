package rbacstore

import (
	"context"

	"github.com/google/uuid"
)

// CreateRole stores a new role under a freshly generated identifier.
// An identifier collision is reported as ErrConflict.
func (s *Store) CreateRole(ctx context.Context, systemName, displayName, description string) (Role, error) {
	if err := enter(ctx); err != nil {
		return Role{}, err
	}
	if err := checkNames(systemName, displayName); err != nil {
		return Role{}, err
	}

	id, err := s.generateID()
	if err != nil {
		return Role{}, err
	}

	role := Role{
		ID:          id,
		SystemName:  systemName,
		DisplayName: displayName,
		Description: description,
	}
	if err := s.roles.insert(id, role); err != nil {
		return Role{}, err
	}
	return role, nil
}

// UpdateRole replaces the stored record wholesale.
// It fails with ErrNotFound for an unknown ID and with ErrConflict when another
// writer changed the record between the read and the swap. It never retries.
func (s *Store) UpdateRole(ctx context.Context, role Role) (Role, error) {
	if err := enter(ctx); err != nil {
		return Role{}, err
	}
	if err := checkID("id", role.ID); err != nil {
		return Role{}, err
	}
	if err := checkNames(role.SystemName, role.DisplayName); err != nil {
		return Role{}, err
	}
	return s.roles.replace(role.ID, role)
}

// DeleteRole removes the role. Associations pointing at it are left untouched.
func (s *Store) DeleteRole(ctx context.Context, id uuid.UUID) error {
	if err := enter(ctx); err != nil {
		return err
	}
	if err := checkID("id", id); err != nil {
		return err
	}
	return s.roles.remove(id)
}

// DeleteRoleEntity removes the role identified by role.ID.
func (s *Store) DeleteRoleEntity(ctx context.Context, role Role) error {
	return s.DeleteRole(ctx, role.ID)
}

// GetRole returns the role or ErrNotFound.
func (s *Store) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	if err := enter(ctx); err != nil {
		return Role{}, err
	}
	if err := checkID("id", id); err != nil {
		return Role{}, err
	}
	return s.roles.get(id)
}

// ExistsRole reports whether the role is stored.
// Unlike GetRole it does not treat absence as an error.
func (s *Store) ExistsRole(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := enter(ctx); err != nil {
		return false, err
	}
	if err := checkID("id", id); err != nil {
		return false, err
	}
	return s.roles.exists(id), nil
}
