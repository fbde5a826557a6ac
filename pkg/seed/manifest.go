package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rbackit/pkg/validator"
)

// Entry declares a role or a permission.
type Entry struct {
	SystemName  string `yaml:"system_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description,omitempty"`
}

// Grant links a role to a permission by their system names.
type Grant struct {
	Role       string `yaml:"role"`
	Permission string `yaml:"permission"`
}

// Manifest is the bootstrap description of an RBAC graph.
type Manifest struct {
	Roles       []Entry `yaml:"roles"`
	Permissions []Entry `yaml:"permissions"`
	Grants      []Grant `yaml:"grants"`
}

// Parse decodes a manifest and validates it. Unknown keys are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads and parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrParseManifest, err)
	}
	return Parse(bytes.NewReader(data))
}

// Validate checks names, uniqueness of system names per kind, that every grant
// refers to declared entries and that no grant is listed twice.
func (m *Manifest) Validate() error {
	var rules []validator.Rule

	roleNames := entryRules(&rules, "roles", m.Roles)
	permNames := entryRules(&rules, "permissions", m.Permissions)

	grantKeys := make([]string, 0, len(m.Grants))
	for i, g := range m.Grants {
		field := fmt.Sprintf("grants[%d]", i)
		rules = append(rules,
			declared(field+".role", g.Role, roleNames),
			declared(field+".permission", g.Permission, permNames),
		)
		grantKeys = append(grantKeys, g.Role+"\x00"+g.Permission)
	}
	rules = append(rules, validator.Unique("grants", grantKeys))

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidManifest, err)
	}
	return nil
}

func entryRules(rules *[]validator.Rule, kind string, entries []Entry) map[string]struct{} {
	names := make([]string, 0, len(entries))
	set := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", kind, i)
		*rules = append(*rules,
			validator.RequiredString(field+".system_name", e.SystemName),
			validator.RequiredString(field+".display_name", e.DisplayName),
		)
		names = append(names, e.SystemName)
		set[e.SystemName] = struct{}{}
	}
	*rules = append(*rules, validator.Unique(kind+".system_name", names))
	return set
}

func declared(field, name string, names map[string]struct{}) validator.Rule {
	_, ok := names[name]
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%q is not declared", name),
			Code:    "undeclared",
		},
	}
}
