package rbacstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
	"github.com/dmitrymomot/rbackit/pkg/validator"
)

func TestStore_CreateRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores and returns the role", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		role, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, role.ID)
		assert.Equal(t, "admin", role.SystemName)
		assert.Equal(t, "Administrator", role.DisplayName)
		assert.Empty(t, role.Description)

		got, err := store.GetRole(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, role, got)
	})

	t.Run("generates fresh identifiers", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		first, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)
		second, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		tests := []struct {
			name        string
			systemName  string
			displayName string
			fields      []string
		}{
			{"empty system name", "", "Administrator", []string{"system_name"}},
			{"blank display name", "admin", "   ", []string{"display_name"}},
			{"both empty", "", "", []string{"system_name", "display_name"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := store.CreateRole(ctx, tt.systemName, tt.displayName, "")
				require.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
				assert.Equal(t, tt.fields, validator.ExtractValidationErrors(err).Fields())
			})
		}
		assert.Zero(t, store.Stats().Roles)
	})

	t.Run("reports identifier collision", func(t *testing.T) {
		t.Parallel()
		fixed := uuid.New()
		store := rbacstore.New(rbacstore.WithIDGenerator(func() (uuid.UUID, error) {
			return fixed, nil
		}))

		_, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)

		_, err = store.CreateRole(ctx, "viewer", "Viewer", "")
		require.ErrorIs(t, err, rbacstore.ErrConflict)

		got, err := store.GetRole(ctx, fixed)
		require.NoError(t, err)
		assert.Equal(t, "admin", got.SystemName)
	})

	t.Run("reports generator failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("entropy exhausted")
		store := rbacstore.New(rbacstore.WithIDGenerator(func() (uuid.UUID, error) {
			return uuid.Nil, boom
		}))

		_, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.ErrorIs(t, err, rbacstore.ErrIDGeneration)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects nil identifiers from generator", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New(rbacstore.WithIDGenerator(func() (uuid.UUID, error) {
			return uuid.Nil, nil
		}))

		_, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.ErrorIs(t, err, rbacstore.ErrIDGeneration)
	})
}

func TestStore_UpdateRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("replaces the whole record", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "admin", "Administrator", "full access")
		require.NoError(t, err)

		updated, err := store.UpdateRole(ctx, rbacstore.Role{
			ID:          role.ID,
			SystemName:  "root",
			DisplayName: "Root",
		})
		require.NoError(t, err)
		assert.Equal(t, "root", updated.SystemName)

		got, err := store.GetRole(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		assert.Empty(t, got.Description)
	})

	t.Run("unknown id is not found and nothing is created", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		id := uuid.New()

		_, err := store.UpdateRole(ctx, rbacstore.Role{ID: id, SystemName: "admin", DisplayName: "Admin"})
		require.ErrorIs(t, err, rbacstore.ErrNotFound)

		exists, err := store.ExistsRole(ctx, id)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("nil id is invalid", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		_, err := store.UpdateRole(ctx, rbacstore.Role{SystemName: "admin", DisplayName: "Admin"})
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
	})

	t.Run("empty names are invalid", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)

		role.DisplayName = ""
		_, err = store.UpdateRole(ctx, role)
		require.ErrorIs(t, err, rbacstore.ErrInvalidArgument)

		got, err := store.GetRole(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, "Administrator", got.DisplayName)
	})
}

func TestStore_DeleteRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes the role and is not idempotent", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)

		require.NoError(t, store.DeleteRole(ctx, role.ID))

		_, err = store.GetRole(ctx, role.ID)
		require.ErrorIs(t, err, rbacstore.ErrNotFound)

		err = store.DeleteRole(ctx, role.ID)
		assert.ErrorIs(t, err, rbacstore.ErrNotFound)
	})

	t.Run("entity variant delegates by id", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)

		require.NoError(t, store.DeleteRoleEntity(ctx, role))
		assert.ErrorIs(t, store.DeleteRoleEntity(ctx, role), rbacstore.ErrNotFound)
		assert.ErrorIs(t, store.DeleteRoleEntity(ctx, rbacstore.Role{}), rbacstore.ErrInvalidArgument)
	})

	t.Run("does not cascade to associations", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "admin", "Administrator", "")
		require.NoError(t, err)
		perm, err := store.CreatePermission(ctx, "users.write", "Write users", "")
		require.NoError(t, err)
		rp, err := store.AssociatePermissionToRole(ctx, role, perm)
		require.NoError(t, err)

		require.NoError(t, store.DeleteRole(ctx, role.ID))

		got, err := store.GetRoleToPermissionAssociation(ctx, rp.ID)
		require.NoError(t, err)
		assert.Equal(t, role.ID, got.RoleID)
	})
}

func TestStore_GetAndExistsRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := rbacstore.New()

	unknown := uuid.New()

	_, err := store.GetRole(ctx, unknown)
	assert.ErrorIs(t, err, rbacstore.ErrNotFound)

	exists, err := store.ExistsRole(ctx, unknown)
	require.NoError(t, err)
	assert.False(t, exists)

	role, err := store.CreateRole(ctx, "admin", "Administrator", "")
	require.NoError(t, err)

	exists, err = store.ExistsRole(ctx, role.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.DeleteRole(ctx, role.ID))
	exists, err = store.ExistsRole(ctx, role.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.GetRole(ctx, uuid.Nil)
	assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
	_, err = store.ExistsRole(ctx, uuid.Nil)
	assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
}
