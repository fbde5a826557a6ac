package rbacstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

func TestStore_DoneContext(t *testing.T) {
	t.Parallel()

	store := rbacstore.New()
	role, err := store.CreateRole(context.Background(), "admin", "Administrator", "")
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	for name, ctx := range map[string]context.Context{"canceled": canceled, "expired": expired} {
		t.Run(name, func(t *testing.T) {
			calls := map[string]error{}

			_, calls["create role"] = store.CreateRole(ctx, "viewer", "Viewer", "")
			_, calls["update role"] = store.UpdateRole(ctx, rbacstore.Role{ID: role.ID, SystemName: "x", DisplayName: "X"})
			calls["delete role"] = store.DeleteRole(ctx, role.ID)
			_, calls["get role"] = store.GetRole(ctx, role.ID)
			_, calls["exists role"] = store.ExistsRole(ctx, role.ID)
			_, calls["create permission"] = store.CreatePermission(ctx, "p", "P", "")
			_, calls["create association"] = store.CreatePermissionToRoleAssociation(ctx, role.ID, uuid.New())
			calls["delete association"] = store.DeleteRoleToPermissionAssociation(ctx, role.ID, uuid.New())
			_, calls["get association"] = store.GetRoleToPermissionAssociation(ctx, uuid.New())

			for op, err := range calls {
				assert.ErrorIs(t, err, rbacstore.ErrCanceled, op)
				assert.ErrorIs(t, err, ctx.Err(), op)
			}
		})
	}

	got, err := store.GetRole(context.Background(), role.ID)
	require.NoError(t, err)
	assert.Equal(t, role, got)
	assert.Equal(t, rbacstore.Stats{Roles: 1}, store.Stats())
}

func TestStore_CanceledBeforeValidation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rbacstore.New().GetRole(ctx, uuid.Nil)
	assert.ErrorIs(t, err, rbacstore.ErrCanceled)
	assert.NotErrorIs(t, err, rbacstore.ErrInvalidArgument)
}
