// Package validator provides precondition rules for RBAC entry points.
//
// A Rule pairs a check with the ValidationError reported when the check fails.
// Apply runs every rule and collects the failures into ValidationErrors, so a
// single call reports all bad arguments at once:
//
//	err := validator.Apply(
//	    validator.RequiredString("system_name", systemName),
//	    validator.NonNilUUID("role_id", roleID),
//	)
//	if validator.IsValidationError(err) {
//	    for _, field := range validator.ExtractValidationErrors(err).Fields() {
//	        // ...
//	    }
//	}
//
// ValidationErrors unwraps to ErrValidationFailed, so errors.Is works through any
// errors.Join chain built on top of it.
package validator
