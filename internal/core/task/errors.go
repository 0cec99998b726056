package task

import "errors"

var (
	// ErrNotFound is returned when no task in the tree has the requested id.
	ErrNotFound = errors.New("task not found")
	// ErrParentNotFound is returned when a draft references a parent id that
	// does not exist.
	ErrParentNotFound = errors.New("parent task not found")
	// ErrEmptyTitle is returned when a title is blank after trimming.
	ErrEmptyTitle = errors.New("title is required")
	// ErrInvalidPriority is returned for priorities outside low/medium/high.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidStatus is returned for statuses outside todo/in-progress/completed.
	ErrInvalidStatus = errors.New("invalid status")
)
