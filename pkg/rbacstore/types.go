package rbacstore

import (
	"context"

	"github.com/google/uuid"
)

// Role is a named set of permissions.
// SystemName is the machine key, DisplayName is shown to humans.
type Role struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	SystemName  string    `json:"system_name" yaml:"system_name"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Permission has the same shape as Role but an independent lifecycle.
type Permission struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	SystemName  string    `json:"system_name" yaml:"system_name"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// RolePermission links a role to a permission.
// Neither side is checked for existence, so an association may outlive
// the role or permission it points to.
type RolePermission struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	RoleID       uuid.UUID `json:"role_id" yaml:"role_id"`
	PermissionID uuid.UUID `json:"permission_id" yaml:"permission_id"`
}

// RoleManager manages the role table.
type RoleManager interface {
	// CreateRole stores a new role under a freshly generated identifier.
	CreateRole(ctx context.Context, systemName, displayName, description string) (Role, error)

	// UpdateRole replaces the stored role with the same ID using a single compare-and-swap.
	UpdateRole(ctx context.Context, role Role) (Role, error)

	// DeleteRole removes the role with the given ID.
	DeleteRole(ctx context.Context, id uuid.UUID) error

	// DeleteRoleEntity removes the role identified by role.ID.
	DeleteRoleEntity(ctx context.Context, role Role) error

	// GetRole returns the role with the given ID or ErrNotFound.
	GetRole(ctx context.Context, id uuid.UUID) (Role, error)

	// ExistsRole reports whether a role with the given ID is stored.
	ExistsRole(ctx context.Context, id uuid.UUID) (bool, error)
}

// PermissionManager manages the permission table.
type PermissionManager interface {
	CreatePermission(ctx context.Context, systemName, displayName, description string) (Permission, error)
	UpdatePermission(ctx context.Context, permission Permission) (Permission, error)
	DeletePermission(ctx context.Context, id uuid.UUID) error
	DeletePermissionEntity(ctx context.Context, permission Permission) error
	GetPermission(ctx context.Context, id uuid.UUID) (Permission, error)
	ExistsPermission(ctx context.Context, id uuid.UUID) (bool, error)
}

// RolePermissionManager manages role-to-permission associations.
type RolePermissionManager interface {
	// CreatePermissionToRoleAssociation links the permission to the role.
	CreatePermissionToRoleAssociation(ctx context.Context, roleID, permissionID uuid.UUID) (RolePermission, error)

	// AssociatePermissionToRole links the permission to the role by their IDs.
	AssociatePermissionToRole(ctx context.Context, role Role, permission Permission) (RolePermission, error)

	// DeleteRoleToPermissionAssociation removes the single association for the pair.
	DeleteRoleToPermissionAssociation(ctx context.Context, roleID, permissionID uuid.UUID) error

	// DissociatePermissionFromRole removes the association by the entities' IDs.
	DissociatePermissionFromRole(ctx context.Context, role Role, permission Permission) error

	// GetRoleToPermissionAssociation looks an association up by its own ID.
	GetRoleToPermissionAssociation(ctx context.Context, id uuid.UUID) (RolePermission, error)
}

// Provider is the complete operation set of the RBAC data provider.
type Provider interface {
	RoleManager
	PermissionManager
	RolePermissionManager
}
