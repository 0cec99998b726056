package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MaxLength int
	Pattern   *regexp.Regexp
	// Check runs last on non-empty values and returns an error message.
	Check func(value string) string
}

// ValidateText checks a text value against the validation rules. Leading
// and trailing whitespace is ignored.
func (v FieldValidation) ValidateText(value string) string {
	value = strings.TrimSpace(value)
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	if v.Check != nil {
		return v.Check(value)
	}
	return ""
}
