package rbacstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rbackit/pkg/validator"
)

// Store is an in-memory Provider.
// It owns three independent concurrent tables and is safe for concurrent use.
// The zero value is not usable; call New.
type Store struct {
	roles        *table[Role]
	permissions  *table[Permission]
	associations *table[RolePermission]
	newID        IDGenerator
}

var _ Provider = (*Store)(nil)

// Stats holds the number of entries in each table.
type Stats struct {
	Roles        int `json:"roles" yaml:"roles"`
	Permissions  int `json:"permissions" yaml:"permissions"`
	Associations int `json:"associations" yaml:"associations"`
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		roles:        newTable[Role]("role"),
		permissions:  newTable[Permission]("permission"),
		associations: newTable[RolePermission]("role_permission"),
		newID:        uuid.NewRandom,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats counts the entries of every table.
// Counts are taken one table at a time and are not a consistent snapshot
// while writers are active.
func (s *Store) Stats() Stats {
	return Stats{
		Roles:        s.roles.len(),
		Permissions:  s.permissions.len(),
		Associations: s.associations.len(),
	}
}

// enter rejects work on a context that is already done.
func enter(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrCanceled, err)
	}
	return nil
}

func (s *Store) generateID() (uuid.UUID, error) {
	id, err := s.newID()
	if err != nil {
		return uuid.Nil, errors.Join(ErrIDGeneration, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, errors.Join(ErrIDGeneration, errors.New("generator returned nil uuid"))
	}
	return id, nil
}

func validate(rules ...validator.Rule) error {
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidArgument, err)
	}
	return nil
}

func checkID(field string, id uuid.UUID) error {
	return validate(validator.NonNilUUID(field, id))
}

func checkNames(systemName, displayName string) error {
	return validate(
		validator.RequiredString("system_name", systemName),
		validator.RequiredString("display_name", displayName),
	)
}
