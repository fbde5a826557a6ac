// Package instrument decorates an rbacstore.Provider with logging and Prometheus metrics.
//
// The store itself never logs; wrap it here when the caller wants observability:
//
//	metrics, err := instrument.NewMetrics(prometheus.DefaultRegisterer, "rbackit")
//	if err != nil {
//	    return err
//	}
//	var p rbacstore.Provider = rbacstore.New()
//	p = instrument.Metered(p, metrics)
//	p = instrument.Logged(p, log)
package instrument

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

// Operation names as reported in logs and metric labels.
const (
	OpCreateRole        = "create_role"
	OpUpdateRole        = "update_role"
	OpDeleteRole        = "delete_role"
	OpGetRole           = "get_role"
	OpExistsRole        = "exists_role"
	OpCreatePermission  = "create_permission"
	OpUpdatePermission  = "update_permission"
	OpDeletePermission  = "delete_permission"
	OpGetPermission     = "get_permission"
	OpExistsPermission  = "exists_permission"
	OpCreateAssociation = "create_association"
	OpDeleteAssociation = "delete_association"
	OpGetAssociation    = "get_association"
)

// Entity kinds.
const (
	EntityRole           = "role"
	EntityPermission     = "permission"
	EntityRolePermission = "role_permission"
)

// Result classes, see Classify.
const (
	ResultOK                 = "ok"
	ResultInvalidArgument    = "invalid_argument"
	ResultNotFound           = "not_found"
	ResultConflict           = "conflict"
	ResultIntegrityViolation = "integrity_violation"
	ResultCanceled           = "canceled"
	ResultError              = "error"
)

// Call describes one completed provider operation.
type Call struct {
	Operation    string
	Entity       string
	ID           uuid.UUID
	RoleID       uuid.UUID
	PermissionID uuid.UUID
	Err          error
	Duration     time.Duration
}

// Result returns the result class of the call.
func (c Call) Result() string {
	return Classify(c.Err)
}

// Hook observes completed calls. Hooks run synchronously on the caller's goroutine.
type Hook func(ctx context.Context, call Call)

// Classify maps a store error onto a result class.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, rbacstore.ErrCanceled):
		return ResultCanceled
	case errors.Is(err, rbacstore.ErrInvalidArgument):
		return ResultInvalidArgument
	case errors.Is(err, rbacstore.ErrIntegrityViolation):
		return ResultIntegrityViolation
	case errors.Is(err, rbacstore.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, rbacstore.ErrConflict):
		return ResultConflict
	default:
		return ResultError
	}
}

// Wrap returns a Provider that forwards to next and reports every call to hooks.
func Wrap(next rbacstore.Provider, hooks ...Hook) rbacstore.Provider {
	clean := make([]Hook, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			clean = append(clean, h)
		}
	}
	return &provider{next: next, hooks: clean}
}
