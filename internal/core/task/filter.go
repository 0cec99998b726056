package task

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// PriorityFilter selects which priorities are shown.
type PriorityFilter struct {
	Low    bool `json:"low" yaml:"low" toml:"low"`
	Medium bool `json:"medium" yaml:"medium" toml:"medium"`
	High   bool `json:"high" yaml:"high" toml:"high"`
}

// AllPriorities includes every priority.
func AllPriorities() PriorityFilter {
	return PriorityFilter{Low: true, Medium: true, High: true}
}

// Allows reports whether tasks of priority p pass the filter.
func (f PriorityFilter) Allows(p Priority) bool {
	switch p {
	case PriorityLow:
		return f.Low
	case PriorityMedium:
		return f.Medium
	case PriorityHigh:
		return f.High
	}
	return false
}

// Toggle flips the flag for p.
func (f PriorityFilter) Toggle(p Priority) PriorityFilter {
	switch p {
	case PriorityLow:
		f.Low = !f.Low
	case PriorityMedium:
		f.Medium = !f.Medium
	case PriorityHigh:
		f.High = !f.High
	}
	return f
}

// Filter holds every recognized filter setting.
type Filter struct {
	// ShowCompleted false hides tasks whose status is completed.
	ShowCompleted bool `json:"show_completed" yaml:"show_completed" toml:"show_completed"`
	// Priority hides tasks whose priority flag is false.
	Priority PriorityFilter `json:"priority" yaml:"priority" toml:"priority"`
	// Category, when set, keeps only tasks with exactly that category.
	Category string `json:"category,omitempty" yaml:"category" toml:"category"`
	// TagPattern, when set, keeps only tasks with a tag matching the glob.
	TagPattern string `json:"tag_pattern,omitempty" yaml:"tag_pattern" toml:"tag_pattern"`
}

// DefaultFilter shows everything.
func DefaultFilter() Filter {
	return Filter{
		ShowCompleted: true,
		Priority:      AllPriorities(),
	}
}

// Validate checks that the tag pattern is a valid glob.
func (f Filter) Validate() error {
	if f.TagPattern != "" && !doublestar.ValidatePattern(f.TagPattern) {
		return fmt.Errorf("invalid tag pattern %q", f.TagPattern)
	}
	return nil
}

// Matches reports whether a single task passes the filter.
func (f Filter) Matches(t Task) bool {
	if !f.ShowCompleted && t.Completed() {
		return false
	}
	if !f.Priority.Allows(t.Priority) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.TagPattern != "" && !matchesAnyTag(f.TagPattern, t.Tags) {
		return false
	}
	return true
}

// VisibleTasks returns the roots that pass the filter, in their original
// order. Only roots are evaluated: a root that fails hides its entire
// subtree, and children of a visible root are always shown.
func VisibleTasks(roots []Task, f Filter) []Task {
	visible := make([]Task, 0, len(roots))
	for _, t := range roots {
		if f.Matches(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

func matchesAnyTag(pattern string, tags []string) bool {
	for _, tag := range tags {
		if ok, err := doublestar.Match(pattern, tag); err == nil && ok {
			return true
		}
	}
	return false
}
