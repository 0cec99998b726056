package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/taskboard/internal/core/task"
)

// SeedTree adds the configured seed tasks to tree, parents before their
// subtasks and in file order. Seed statuses other than todo are applied
// after creation.
func (c *Config) SeedTree(tree *task.Tree) error {
	type item struct {
		seed     SeedTask
		parentID string
	}

	stack := make([]item, 0, len(c.Seed))
	for i := len(c.Seed) - 1; i >= 0; i-- {
		stack = append(stack, item{seed: c.Seed[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := top.seed.Draft
		d.ParentID = top.parentID
		created, err := tree.Add(d)
		if err != nil {
			return fmt.Errorf("seed %q: %w", d.Title, err)
		}

		if s := top.seed.Status; s != "" && s != task.StatusTodo {
			if _, err := tree.Edit(created.ID, task.StatusPatch(s)); err != nil {
				return fmt.Errorf("seed %q: %w", d.Title, err)
			}
		}

		for i := len(top.seed.Subtasks) - 1; i >= 0; i-- {
			stack = append(stack, item{seed: top.seed.Subtasks[i], parentID: created.ID})
		}
	}
	return nil
}

// WithSeed returns a copy of c whose seed tasks are replaced by seed, with
// the same defaults Load applies.
func (c *Config) WithSeed(seed []SeedTask) *Config {
	out := *c
	out.Seed = seed
	out.applyDefaults()
	return &out
}

// UnmarshalJSON accepts due_date either as RFC 3339 or as a plain
// DefaultDateFormat date in local time, the form YAML seeds and the board
// use.
func (s *SeedTask) UnmarshalJSON(data []byte) error {
	type plain SeedTask
	var raw struct {
		plain
		DueDate *string `json:"due_date,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = SeedTask(raw.plain)
	s.DueDate = nil
	if raw.DueDate == nil || *raw.DueDate == "" {
		return nil
	}

	due, err := parseSeedDate(*raw.DueDate)
	if err != nil {
		return fmt.Errorf("task %q: due_date: %w", s.Title, err)
	}
	s.DueDate = &due
	return nil
}

func parseSeedDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DefaultDateFormat, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor %s", v, DefaultDateFormat)
	}
	return t, nil
}
