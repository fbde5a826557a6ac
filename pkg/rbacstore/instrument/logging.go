package instrument

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rbackit/pkg/logger"
	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
)

// Logged returns a Provider that logs every call made through it.
// Successful calls log at debug level. Caller mistakes (invalid argument, not
// found, canceled) log at warn; conflicts, integrity violations and unknown
// failures log at error.
func Logged(next rbacstore.Provider, log *slog.Logger) rbacstore.Provider {
	return Wrap(next, LogHook(log))
}

// LogHook returns a Hook that writes one record per call.
func LogHook(log *slog.Logger) Hook {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("rbacstore"))

	return func(ctx context.Context, call Call) {
		result := call.Result()
		level := levelFor(result)
		if !log.Enabled(ctx, level) {
			return
		}

		log.LogAttrs(ctx, level, "rbacstore call",
			logger.Operation(call.Operation),
			logger.Entity(call.Entity),
			logger.EntityID(call.ID),
			logger.RoleID(call.RoleID),
			logger.PermissionID(call.PermissionID),
			slog.String("result", result),
			logger.Duration(call.Duration),
			logger.Error(call.Err),
		)
	}
}

func levelFor(result string) slog.Level {
	switch result {
	case ResultOK:
		return slog.LevelDebug
	case ResultInvalidArgument, ResultNotFound, ResultCanceled:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
