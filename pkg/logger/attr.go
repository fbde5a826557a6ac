package logger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Operation records the store operation name, e.g. "create_role".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Entity records the entity kind: "role", "permission" or "role_permission".
func Entity(kind string) slog.Attr {
	return slog.String("entity", kind)
}

// EntityID records an entity identifier under "entity_id". uuid.Nil yields an empty Attr.
func EntityID(id uuid.UUID) slog.Attr {
	return uuidAttr("entity_id", id)
}

func RoleID(id uuid.UUID) slog.Attr {
	return uuidAttr("role_id", id)
}

func PermissionID(id uuid.UUID) slog.Attr {
	return uuidAttr("permission_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func uuidAttr(key string, id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String(key, id.String())
}
