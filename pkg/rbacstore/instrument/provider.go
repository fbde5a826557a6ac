package instrument

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

type provider struct {
	next  rbacstore.Provider
	hooks []Hook
}

var _ rbacstore.Provider = (*provider)(nil)

func (p *provider) observe(ctx context.Context, call Call, start time.Time) {
	call.Duration = time.Since(start)
	for _, h := range p.hooks {
		h(ctx, call)
	}
}

func (p *provider) CreateRole(ctx context.Context, systemName, displayName, description string) (rbacstore.Role, error) {
	start := time.Now()
	role, err := p.next.CreateRole(ctx, systemName, displayName, description)
	p.observe(ctx, Call{Operation: OpCreateRole, Entity: EntityRole, ID: role.ID, Err: err}, start)
	return role, err
}

func (p *provider) UpdateRole(ctx context.Context, role rbacstore.Role) (rbacstore.Role, error) {
	start := time.Now()
	updated, err := p.next.UpdateRole(ctx, role)
	p.observe(ctx, Call{Operation: OpUpdateRole, Entity: EntityRole, ID: role.ID, Err: err}, start)
	return updated, err
}

func (p *provider) DeleteRole(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.DeleteRole(ctx, id)
	p.observe(ctx, Call{Operation: OpDeleteRole, Entity: EntityRole, ID: id, Err: err}, start)
	return err
}

func (p *provider) DeleteRoleEntity(ctx context.Context, role rbacstore.Role) error {
	return p.DeleteRole(ctx, role.ID)
}

func (p *provider) GetRole(ctx context.Context, id uuid.UUID) (rbacstore.Role, error) {
	start := time.Now()
	role, err := p.next.GetRole(ctx, id)
	p.observe(ctx, Call{Operation: OpGetRole, Entity: EntityRole, ID: id, Err: err}, start)
	return role, err
}

func (p *provider) ExistsRole(ctx context.Context, id uuid.UUID) (bool, error) {
	start := time.Now()
	ok, err := p.next.ExistsRole(ctx, id)
	p.observe(ctx, Call{Operation: OpExistsRole, Entity: EntityRole, ID: id, Err: err}, start)
	return ok, err
}

func (p *provider) CreatePermission(ctx context.Context, systemName, displayName, description string) (rbacstore.Permission, error) {
	start := time.Now()
	perm, err := p.next.CreatePermission(ctx, systemName, displayName, description)
	p.observe(ctx, Call{Operation: OpCreatePermission, Entity: EntityPermission, ID: perm.ID, Err: err}, start)
	return perm, err
}

func (p *provider) UpdatePermission(ctx context.Context, permission rbacstore.Permission) (rbacstore.Permission, error) {
	start := time.Now()
	updated, err := p.next.UpdatePermission(ctx, permission)
	p.observe(ctx, Call{Operation: OpUpdatePermission, Entity: EntityPermission, ID: permission.ID, Err: err}, start)
	return updated, err
}

func (p *provider) DeletePermission(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.DeletePermission(ctx, id)
	p.observe(ctx, Call{Operation: OpDeletePermission, Entity: EntityPermission, ID: id, Err: err}, start)
	return err
}

func (p *provider) DeletePermissionEntity(ctx context.Context, permission rbacstore.Permission) error {
	return p.DeletePermission(ctx, permission.ID)
}

func (p *provider) GetPermission(ctx context.Context, id uuid.UUID) (rbacstore.Permission, error) {
	start := time.Now()
	perm, err := p.next.GetPermission(ctx, id)
	p.observe(ctx, Call{Operation: OpGetPermission, Entity: EntityPermission, ID: id, Err: err}, start)
	return perm, err
}

func (p *provider) ExistsPermission(ctx context.Context, id uuid.UUID) (bool, error) {
	start := time.Now()
	ok, err := p.next.ExistsPermission(ctx, id)
	p.observe(ctx, Call{Operation: OpExistsPermission, Entity: EntityPermission, ID: id, Err: err}, start)
	return ok, err
}

func (p *provider) CreatePermissionToRoleAssociation(ctx context.Context, roleID, permissionID uuid.UUID) (rbacstore.RolePermission, error) {
	start := time.Now()
	rp, err := p.next.CreatePermissionToRoleAssociation(ctx, roleID, permissionID)
	p.observe(ctx, Call{
		Operation:    OpCreateAssociation,
		Entity:       EntityRolePermission,
		ID:           rp.ID,
		RoleID:       roleID,
		PermissionID: permissionID,
		Err:          err,
	}, start)
	return rp, err
}

func (p *provider) AssociatePermissionToRole(ctx context.Context, role rbacstore.Role, permission rbacstore.Permission) (rbacstore.RolePermission, error) {
	return p.CreatePermissionToRoleAssociation(ctx, role.ID, permission.ID)
}

func (p *provider) DeleteRoleToPermissionAssociation(ctx context.Context, roleID, permissionID uuid.UUID) error {
	start := time.Now()
	err := p.next.DeleteRoleToPermissionAssociation(ctx, roleID, permissionID)
	p.observe(ctx, Call{
		Operation:    OpDeleteAssociation,
		Entity:       EntityRolePermission,
		RoleID:       roleID,
		PermissionID: permissionID,
		Err:          err,
	}, start)
	return err
}

func (p *provider) DissociatePermissionFromRole(ctx context.Context, role rbacstore.Role, permission rbacstore.Permission) error {
	return p.DeleteRoleToPermissionAssociation(ctx, role.ID, permission.ID)
}

func (p *provider) GetRoleToPermissionAssociation(ctx context.Context, id uuid.UUID) (rbacstore.RolePermission, error) {
	start := time.Now()
	rp, err := p.next.GetRoleToPermissionAssociation(ctx, id)
	p.observe(ctx, Call{
		Operation:    OpGetAssociation,
		Entity:       EntityRolePermission,
		ID:           id,
		RoleID:       rp.RoleID,
		PermissionID: rp.PermissionID,
		Err:          err,
	}, start)
	return rp, err
}
