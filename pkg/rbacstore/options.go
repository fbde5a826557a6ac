package rbacstore

import "github.com/google/uuid"

// IDGenerator produces identifiers for new entities.
type IDGenerator func() (uuid.UUID, error)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the identifier source. Nil is ignored.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}
