package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RequiredString rejects empty and whitespace-only strings.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "max_length",
		},
	}
}

// NonNilUUID rejects the zero UUID.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "UUID cannot be nil",
			Code:    "uuid_not_nil",
		},
	}
}

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
			Code:    "in_list",
		},
	}
}

// Unique rejects slices that contain the same value twice.
func Unique(field string, values []string) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[string]struct{}, len(values))
			for _, v := range values {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "values must be unique",
			Code:    "unique",
		},
	}
}
