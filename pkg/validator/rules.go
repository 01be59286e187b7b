package validator

import (
	"net/mail"
	"slices"
	"strings"
	"time"
)

// Required fails when the value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// ValidEmail fails when the value is not a plausible email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// mail.ParseAddress accepts display names and local-only
			// addresses; require a bare user@domain form.
			if addr.Address != value {
				return false
			}
			parts := strings.Split(addr.Address, "@")
			return len(parts) == 2 && parts[0] != "" && strings.Contains(parts[1], ".")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// OneOf fails when the value is not among the allowed set.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of: " + strings.Join(allowed, ", "),
		},
	}
}

// RequiredTime fails when the time value is the zero value.
func RequiredTime(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}
