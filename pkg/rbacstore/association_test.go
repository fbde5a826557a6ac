package rbacstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

func TestStore_CreateAssociation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("links existing entities", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "editor", "Editor", "")
		require.NoError(t, err)
		perm, err := store.CreatePermission(ctx, "posts.write", "Write posts", "")
		require.NoError(t, err)

		rp, err := store.AssociatePermissionToRole(ctx, role, perm)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rp.ID)
		assert.Equal(t, role.ID, rp.RoleID)
		assert.Equal(t, perm.ID, rp.PermissionID)

		got, err := store.GetRoleToPermissionAssociation(ctx, rp.ID)
		require.NoError(t, err)
		assert.Equal(t, rp, got)
	})

	t.Run("does not check that the entities exist", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		rp, err := store.CreatePermissionToRoleAssociation(ctx, uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, rbacstore.Stats{Associations: 1}, store.Stats())

		_, err = store.GetRole(ctx, rp.RoleID)
		assert.ErrorIs(t, err, rbacstore.ErrNotFound)
	})

	t.Run("rejects nil identifiers", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		_, err := store.CreatePermissionToRoleAssociation(ctx, uuid.Nil, uuid.New())
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
		_, err = store.CreatePermissionToRoleAssociation(ctx, uuid.New(), uuid.Nil)
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
		_, err = store.AssociatePermissionToRole(ctx, rbacstore.Role{}, rbacstore.Permission{})
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
		assert.Zero(t, store.Stats().Associations)
	})

	t.Run("reports identifier collision", func(t *testing.T) {
		t.Parallel()
		fixed := uuid.New()
		store := rbacstore.New(rbacstore.WithIDGenerator(func() (uuid.UUID, error) {
			return fixed, nil
		}))

		_, err := store.CreatePermissionToRoleAssociation(ctx, uuid.New(), uuid.New())
		require.NoError(t, err)
		_, err = store.CreatePermissionToRoleAssociation(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, rbacstore.ErrConflict)
	})
}

func TestStore_DeleteAssociation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes exactly one record", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		roleID, permID := uuid.New(), uuid.New()

		rp, err := store.CreatePermissionToRoleAssociation(ctx, roleID, permID)
		require.NoError(t, err)
		other, err := store.CreatePermissionToRoleAssociation(ctx, roleID, uuid.New())
		require.NoError(t, err)

		require.NoError(t, store.DeleteRoleToPermissionAssociation(ctx, roleID, permID))

		_, err = store.GetRoleToPermissionAssociation(ctx, rp.ID)
		assert.ErrorIs(t, err, rbacstore.ErrNotFound)
		_, err = store.GetRoleToPermissionAssociation(ctx, other.ID)
		assert.NoError(t, err)
	})

	t.Run("no match is an integrity violation", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		roleID, permID := uuid.New(), uuid.New()
		_, err := store.CreatePermissionToRoleAssociation(ctx, permID, roleID)
		require.NoError(t, err)

		err = store.DeleteRoleToPermissionAssociation(ctx, roleID, permID)
		require.ErrorIs(t, err, rbacstore.ErrIntegrityViolation)
		assert.ErrorIs(t, err, rbacstore.ErrAssociationNotFound)
		assert.NotErrorIs(t, err, rbacstore.ErrAmbiguousAssociation)
	})

	t.Run("duplicate match is an integrity violation", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role, err := store.CreateRole(ctx, "editor", "Editor", "")
		require.NoError(t, err)
		perm, err := store.CreatePermission(ctx, "posts.write", "Write posts", "")
		require.NoError(t, err)

		_, err = store.AssociatePermissionToRole(ctx, role, perm)
		require.NoError(t, err)
		_, err = store.AssociatePermissionToRole(ctx, role, perm)
		require.NoError(t, err)

		err = store.DissociatePermissionFromRole(ctx, role, perm)
		require.ErrorIs(t, err, rbacstore.ErrIntegrityViolation)
		assert.ErrorIs(t, err, rbacstore.ErrAmbiguousAssociation)
		assert.Equal(t, 2, store.Stats().Associations)
	})

	t.Run("second delete fails", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()
		role := rbacstore.Role{ID: uuid.New()}
		perm := rbacstore.Permission{ID: uuid.New()}

		_, err := store.AssociatePermissionToRole(ctx, role, perm)
		require.NoError(t, err)

		require.NoError(t, store.DissociatePermissionFromRole(ctx, role, perm))
		assert.ErrorIs(t, store.DissociatePermissionFromRole(ctx, role, perm), rbacstore.ErrAssociationNotFound)
	})

	t.Run("rejects nil identifiers", func(t *testing.T) {
		t.Parallel()
		store := rbacstore.New()

		err := store.DeleteRoleToPermissionAssociation(ctx, uuid.Nil, uuid.New())
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
		err = store.DeleteRoleToPermissionAssociation(ctx, uuid.New(), uuid.Nil)
		assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
	})
}

func TestStore_GetAssociation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := rbacstore.New()

	_, err := store.GetRoleToPermissionAssociation(ctx, uuid.New())
	assert.ErrorIs(t, err, rbacstore.ErrNotFound)

	_, err = store.GetRoleToPermissionAssociation(ctx, uuid.Nil)
	assert.ErrorIs(t, err, rbacstore.ErrInvalidArgument)
}
