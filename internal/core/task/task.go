// Package task defines the task domain model: the task entity, its
// enumerations, and the in-memory task tree built on top of it.
package task

import (
	"slices"
	"strings"
	"time"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every valid priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return slices.Contains(Priorities, p)
}

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

// Task is a single node of the task tree. Parent and child relationships are
// stored as id references; the owning Tree resolves them.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags"`
	Category    string     `json:"category,omitempty"`
	ParentID    string     `json:"parent_id,omitempty"`
	Children    []string   `json:"children"`
	Level       int        `json:"level"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// reopen is the status restored when a completed task is toggled back.
	reopen Status
}

// Completed reports whether the task is done. It is the boolean view of
// Status used by deadline checks and summary charts.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// IsRoot returns true if the task has no parent.
func (t Task) IsRoot() bool {
	return t.ParentID == ""
}

// HasChildren returns true if the task owns at least one subtask.
func (t Task) HasChildren() bool {
	return len(t.Children) > 0
}

// Overdue reports whether an incomplete task's due date is at or before now.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed() && t.DueDate != nil && !t.DueDate.After(now)
}

// toggled returns a copy with completion flipped. Completing remembers the
// previous status so that toggling again restores it.
func (t Task) toggled() Task {
	if t.Completed() {
		next := t.reopen
		if next == "" {
			next = StatusTodo
		}
		t.Status = next
		t.reopen = ""
		return t
	}

	t.reopen = t.Status
	t.Status = StatusCompleted
	return t
}

// clone returns a copy that shares no slices or pointers with t.
func (t Task) clone() Task {
	t.Tags = slices.Clone(t.Tags)
	t.Children = slices.Clone(t.Children)
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// Category is a display classification. It is a reference entity only; a
// task's Category label is not checked against the configured set.
type Category struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// Draft is the partial task collected by the task form before the tree
// assigns it an id.
type Draft struct {
	Title       string     `json:"title" yaml:"title" toml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty" toml:"due_date,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority" toml:"priority"`
	Tags        []string   `json:"tags" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	ParentID    string     `json:"parent_id,omitempty" yaml:"parent_id,omitempty" toml:"parent_id,omitempty"`
}

// Patch lists the fields an edit may replace. Nil fields are left untouched.
// Identity and structure (id, parent, children, level, order) are not
// patchable.
type Patch struct {
	Title       *string
	Description *string
	DueDate     **time.Time
	Priority    *Priority
	Status      *Status
	Tags        *[]string
	Category    *string
}

// PatchFromDraft builds a patch replacing every editable field with the
// draft's values, which is what submitting the edit form does.
func PatchFromDraft(d Draft) Patch {
	due := d.DueDate
	tags := slices.Clone(d.Tags)
	return Patch{
		Title:       &d.Title,
		Description: &d.Description,
		DueDate:     &due,
		Priority:    &d.Priority,
		Tags:        &tags,
		Category:    &d.Category,
	}
}

// StatusPatch returns a patch that only changes the status.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}

// apply returns a copy of t with the patch merged in.
func (p Patch) apply(t Task) Task {
	t = t.clone()
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = nil
		if *p.DueDate != nil {
			due := **p.DueDate
			t.DueDate = &due
		}
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil && *p.Status != t.Status {
		if *p.Status == StatusCompleted {
			t.reopen = t.Status
		} else {
			t.reopen = ""
		}
		t.Status = *p.Status
	}
	if p.Tags != nil {
		t.Tags = slices.Clone(*p.Tags)
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}
