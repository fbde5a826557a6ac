package rbacstore

import "errors"

// Domain errors for store operations.
// Callers should match with errors.Is; detail is attached with errors.Join.
var (
	// ErrInvalidArgument is returned when an empty name or a nil identifier is supplied.
	ErrInvalidArgument = errors.New("rbacstore.invalid_argument")

	// ErrNotFound is returned when a lookup, update or delete targets an absent identifier.
	ErrNotFound = errors.New("rbacstore.not_found")

	// ErrConflict is returned when a create collides with an existing identifier
	// or an update loses its compare-and-swap against a concurrent writer.
	ErrConflict = errors.New("rbacstore.conflict")

	// ErrIntegrityViolation is returned when the association table does not hold
	// exactly one record for a (role, permission) pair being deleted.
	ErrIntegrityViolation = errors.New("rbacstore.integrity_violation")

	// ErrAssociationNotFound is joined with ErrIntegrityViolation when no association matches.
	ErrAssociationNotFound = errors.New("rbacstore.association_not_found")

	// ErrAmbiguousAssociation is joined with ErrIntegrityViolation when several associations match.
	ErrAmbiguousAssociation = errors.New("rbacstore.ambiguous_association")

	// ErrCanceled is returned when the context was already done on entry.
	ErrCanceled = errors.New("rbacstore.canceled")

	// ErrIDGeneration is returned when the identifier source fails.
	ErrIDGeneration = errors.New("rbacstore.id_generation_failed")
)
