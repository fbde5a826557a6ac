// Package logger builds *slog.Logger instances with a consistent attribute vocabulary.
//
// New assembles a text or JSON handler from functional options and wraps it in a
// decorator that copies values out of context.Context into every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "rbacctl"),
//	    logger.WithContextValue("manifest", manifestKey{}),
//	)
//	log.InfoContext(ctx, "role created",
//	    logger.Operation("create_role"),
//	    logger.RoleID(role.ID),
//	)
//
// Attribute helpers such as Error and RoleID return an empty slog.Attr for nil
// input, which slog drops, so they can be passed unconditionally.
package logger
