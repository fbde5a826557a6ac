package rbacstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rbackit/pkg/validator"
)

// CreatePermissionToRoleAssociation links a permission to a role.
// Neither identifier is checked against the role or permission tables, and an
// existing link for the same pair is not detected.
func (s *Store) CreatePermissionToRoleAssociation(ctx context.Context, roleID, permissionID uuid.UUID) (RolePermission, error) {
	if err := enter(ctx); err != nil {
		return RolePermission{}, err
	}
	if err := checkPair(roleID, permissionID); err != nil {
		return RolePermission{}, err
	}

	id, err := s.generateID()
	if err != nil {
		return RolePermission{}, err
	}

	rp := RolePermission{
		ID:           id,
		RoleID:       roleID,
		PermissionID: permissionID,
	}
	if err := s.associations.insert(id, rp); err != nil {
		return RolePermission{}, err
	}
	return rp, nil
}

func (s *Store) AssociatePermissionToRole(ctx context.Context, role Role, permission Permission) (RolePermission, error) {
	return s.CreatePermissionToRoleAssociation(ctx, role.ID, permission.ID)
}

// DeleteRoleToPermissionAssociation removes the association for the pair.
// Exactly one record must match: none yields ErrAssociationNotFound and several
// yield ErrAmbiguousAssociation, both joined with ErrIntegrityViolation.
func (s *Store) DeleteRoleToPermissionAssociation(ctx context.Context, roleID, permissionID uuid.UUID) error {
	if err := enter(ctx); err != nil {
		return err
	}
	if err := checkPair(roleID, permissionID); err != nil {
		return err
	}

	var matches []uuid.UUID
	s.associations.scan(func(id uuid.UUID, rp RolePermission) bool {
		if rp.RoleID == roleID && rp.PermissionID == permissionID {
			matches = append(matches, id)
		}
		return true
	})

	switch len(matches) {
	case 0:
		return errors.Join(ErrIntegrityViolation, ErrAssociationNotFound,
			fmt.Errorf("role %s, permission %s", roleID, permissionID))
	case 1:
		return s.associations.remove(matches[0])
	default:
		return errors.Join(ErrIntegrityViolation, ErrAmbiguousAssociation,
			fmt.Errorf("%d associations for role %s, permission %s", len(matches), roleID, permissionID))
	}
}

func (s *Store) DissociatePermissionFromRole(ctx context.Context, role Role, permission Permission) error {
	return s.DeleteRoleToPermissionAssociation(ctx, role.ID, permission.ID)
}

// GetRoleToPermissionAssociation looks an association up by its own ID,
// not by the (role, permission) pair.
func (s *Store) GetRoleToPermissionAssociation(ctx context.Context, id uuid.UUID) (RolePermission, error) {
	if err := enter(ctx); err != nil {
		return RolePermission{}, err
	}
	if err := checkID("id", id); err != nil {
		return RolePermission{}, err
	}
	return s.associations.get(id)
}

func checkPair(roleID, permissionID uuid.UUID) error {
	return validate(
		validator.NonNilUUID("role_id", roleID),
		validator.NonNilUUID("permission_id", permissionID),
	)
}
