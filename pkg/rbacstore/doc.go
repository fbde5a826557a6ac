// Package rbacstore is an in-memory data provider for role-based access control.
//
// It stores three independent tables:
//
//   - Role: a named set of permissions (system name, display name, description)
//   - Permission: an individual capability with the same shape as Role
//   - RolePermission: a many-to-many link between a role and a permission
//
// The package manages the entity graph only. It does not decide whether a subject
// may perform an action; build that on top of a Provider.
//
// # Concurrency
//
// Every table is a concurrent map and every operation is one atomic single-key
// primitive (insert-if-absent, compare-and-swap, delete, load). There are no
// multi-key transactions. Updates read the current record and swap it in a single
// compare-and-swap; a concurrent writer makes the update fail with ErrConflict and
// the caller decides whether to retry.
//
// # Referential integrity
//
// Associations are not checked against the role and permission tables, and deleting
// a role or permission does not delete its associations.
//
// Basic usage:
//
//	store := rbacstore.New()
//
//	admin, err := store.CreateRole(ctx, "admin", "Administrator", "")
//	if err != nil {
//	    return err
//	}
//	write, err := store.CreatePermission(ctx, "users.write", "Write users", "")
//	if err != nil {
//	    return err
//	}
//	if _, err := store.AssociatePermissionToRole(ctx, admin, write); err != nil {
//	    return err
//	}
//
//	admin.DisplayName = "Admins"
//	if _, err := store.UpdateRole(ctx, admin); errors.Is(err, rbacstore.ErrConflict) {
//	    // reload and retry
//	}
//
// # Errors
//
// All failures wrap one of ErrInvalidArgument, ErrNotFound, ErrConflict,
// ErrIntegrityViolation or ErrCanceled; test them with errors.Is.
package rbacstore
