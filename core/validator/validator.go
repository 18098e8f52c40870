package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrValidation is the sentinel every ValidationError matches with errors.Is.
var ErrValidation = errors.New("validation failed")

// Translation keys reported by the built-in rules.
const (
	KeyRequired = "validation.required"
	KeyEmail    = "validation.email"
)

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field          string
	Message        string
	TranslationKey string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Apply evaluates rules in order and returns the first failure as a
// ValidationError, or nil when every rule passes.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// Required fails when value is empty. Whitespace counts as content.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:          field,
			Message:        field + " is required",
			TranslationKey: KeyRequired,
		},
	}
}

// ValidEmail fails when value does not look like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{
			Field:          field,
			Message:        field + " must be a valid email address",
			TranslationKey: KeyEmail,
		},
	}
}

// emailRegex is intentionally conservative: ASCII local part, dotted domain,
// alphabetic TLD of at least two letters.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s matches the email pattern.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
