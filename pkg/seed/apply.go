package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

// Result holds what Apply created, keyed by system name.
type Result struct {
	Roles        map[string]rbacstore.Role       `json:"roles" yaml:"roles"`
	Permissions  map[string]rbacstore.Permission `json:"permissions" yaml:"permissions"`
	Associations []rbacstore.RolePermission      `json:"associations" yaml:"associations"`
}

// Apply creates every role, permission and grant of m through p, in declaration
// order. It stops at the first failure and returns what was created so far
// alongside the error; entries already created are not rolled back.
func Apply(ctx context.Context, p rbacstore.Provider, m *Manifest) (*Result, error) {
	res := &Result{
		Roles:        make(map[string]rbacstore.Role, len(m.Roles)),
		Permissions:  make(map[string]rbacstore.Permission, len(m.Permissions)),
		Associations: make([]rbacstore.RolePermission, 0, len(m.Grants)),
	}

	if err := m.Validate(); err != nil {
		return res, err
	}

	for _, e := range m.Roles {
		role, err := p.CreateRole(ctx, e.SystemName, e.DisplayName, e.Description)
		if err != nil {
			return res, errors.Join(ErrApply, fmt.Errorf("role %q: %w", e.SystemName, err))
		}
		res.Roles[e.SystemName] = role
	}

	for _, e := range m.Permissions {
		perm, err := p.CreatePermission(ctx, e.SystemName, e.DisplayName, e.Description)
		if err != nil {
			return res, errors.Join(ErrApply, fmt.Errorf("permission %q: %w", e.SystemName, err))
		}
		res.Permissions[e.SystemName] = perm
	}

	for _, g := range m.Grants {
		rp, err := p.AssociatePermissionToRole(ctx, res.Roles[g.Role], res.Permissions[g.Permission])
		if err != nil {
			return res, errors.Join(ErrApply, fmt.Errorf("grant %q -> %q: %w", g.Role, g.Permission, err))
		}
		res.Associations = append(res.Associations, rp)
	}

	return res, nil
}
