package task

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidateTitle rejects titles that are blank after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority rejects unknown priorities.
func ValidatePriority(p Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("%w %q: must be one of low, medium, high", ErrInvalidPriority, p)
	}
	return nil
}

// ValidateStatus rejects unknown statuses.
func ValidateStatus(s Status) error {
	if !s.IsValid() {
		return fmt.Errorf("%w %q: must be one of todo, in-progress, completed", ErrInvalidStatus, s)
	}
	return nil
}

// Validate checks the draft fields the tree relies on. Errors are returned as
// criterio field errors keyed by field name.
func (d Draft) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("title", d.Title, ValidateTitle),
		criterio.Run("priority", d.Priority, ValidatePriority),
	)
}

// Validate checks every field the patch sets.
func (p Patch) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			errs = errs.Append("title", err)
		}
	}
	if p.Priority != nil {
		if err := ValidatePriority(*p.Priority); err != nil {
			errs = errs.Append("priority", err)
		}
	}
	if p.Status != nil {
		if err := ValidateStatus(*p.Status); err != nil {
			errs = errs.Append("status", err)
		}
	}
	return errs.ToError()
}
