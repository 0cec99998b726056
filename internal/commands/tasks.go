package commands

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/iojson"
)

// taskSource builds a task tree from the configured seed tasks, or from a
// JSON array of seed tasks when --file is given.
type taskSource struct {
	reader iojson.FileReader[[]config.SeedTask]
}

func (s *taskSource) Flag() *cli.StringFlag {
	return s.reader.Flag()
}

func (s *taskSource) Load(cfg *config.Config) (*task.Tree, error) {
	if s.reader.Set() {
		seed, err := s.reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read tasks: %w", err)
		}
		cfg = cfg.WithSeed(seed)
	}

	tree := task.NewTree()
	if err := cfg.SeedTree(tree); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tree, nil
}

// taskInfo is the JSON output format for a single task.
type taskInfo struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Status   task.Status   `json:"status"`
	Priority task.Priority `json:"priority"`
	DueDate  *time.Time    `json:"due_date,omitempty"`
	Overdue  bool          `json:"overdue"`
	Tags     []string      `json:"tags"`
	Category string        `json:"category,omitempty"`
	ParentID string        `json:"parent_id,omitempty"`
	Depth    int           `json:"depth"`
	Subtasks int           `json:"subtasks"`
}

func newTaskInfo(t task.Task, depth int, now time.Time) taskInfo {
	return taskInfo{
		ID:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		Priority: t.Priority,
		DueDate:  t.DueDate,
		Overdue:  t.Overdue(now),
		Tags:     t.Tags,
		Category: t.Category,
		ParentID: t.ParentID,
		Depth:    depth,
		Subtasks: len(t.Children),
	}
}

// parsePriorities turns priority names into a filter allowing only those
// priorities. No names allows every priority.
func parsePriorities(names []string) (task.PriorityFilter, error) {
	if len(names) == 0 {
		return task.AllPriorities(), nil
	}

	var f task.PriorityFilter
	for _, name := range names {
		p := task.Priority(strings.ToLower(strings.TrimSpace(name)))
		if err := task.ValidatePriority(p); err != nil {
			return f, err
		}
		if !f.Allows(p) {
			f = f.Toggle(p)
		}
	}
	return f, nil
}

// parseAt parses the --at flag. Dates without a time use the start of the
// day in the local zone.
func parseAt(value string, dateFormat string, now func() time.Time) (time.Time, error) {
	if value == "" {
		return now(), nil
	}
	layouts := slices.Compact([]string{time.RFC3339, dateFormat, config.DefaultDateFormat})
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or %s", value, dateFormat)
}

func formatDue(t task.Task, dateFormat string) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Format(dateFormat)
}
