package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/taskboard/internal/core/task"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.deadline_interval", c.TUI.DeadlineInterval, minInterval),
		criterio.Run("tui.date_format", c.TUI.DateFormat, dateFormatRoundTrips),
		c.validateCategories(),
	)
}

// ValidateDeep performs Validate plus checks of the config file and every
// seed task. The configPath argument names the file to check (empty string
// skips the file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateSeed(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	names := c.CategoryNames()
	c.walkSeed(func(path string, s SeedTask) {
		if s.Category != "" && !slices.Contains(names, s.Category) {
			warnings = append(warnings, ValidationWarning{
				Category: "Seed",
				Item:     path,
				Message:  fmt.Sprintf("category %q is not configured", s.Category),
			})
		}
	})

	return warnings
}

func minInterval(d time.Duration) error {
	if d < time.Second {
		return fmt.Errorf("must be at least 1s, got %s", d)
	}
	return nil
}

func dateFormatRoundTrips(layout string) error {
	ref := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil || !parsed.Equal(ref) {
		return fmt.Errorf("layout %q must contain a year, month and day", layout)
	}
	return nil
}

func (c *Config) validateCategories() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if cat.Name == "" {
			errs = errs.Append(field+".name", errors.New("name is required"))
		} else if seen[cat.Name] {
			errs = errs.Append(field+".name", fmt.Errorf("duplicate category %q", cat.Name))
		}
		seen[cat.Name] = true

		if cat.Color != "" {
			if _, err := colorful.Hex(cat.Color); err != nil {
				errs = errs.Append(field+".color", fmt.Errorf("invalid hex color %q", cat.Color))
			}
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateSeed() error {
	var errs criterio.FieldErrorsBuilder
	c.walkSeed(func(path string, s SeedTask) {
		if err := task.ValidateTitle(s.Title); err != nil {
			errs = errs.Append(path+".title", err)
		}
		if err := task.ValidatePriority(s.Priority); err != nil {
			errs = errs.Append(path+".priority", err)
		}
		if err := task.ValidateStatus(s.Status); err != nil {
			errs = errs.Append(path+".status", err)
		}
	})
	return errs.ToError()
}

// walkSeed visits every seed task in file order with its field path, e.g.
// "seed[0].subtasks[1]".
func (c *Config) walkSeed(fn func(path string, s SeedTask)) {
	type item struct {
		path string
		seed SeedTask
	}

	stack := make([]item, 0, len(c.Seed))
	for i := len(c.Seed) - 1; i >= 0; i-- {
		stack = append(stack, item{path: fmt.Sprintf("seed[%d]", i), seed: c.Seed[i]})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.path, top.seed)
		for i := len(top.seed.Subtasks) - 1; i >= 0; i-- {
			stack = append(stack, item{
				path: fmt.Sprintf("%s.subtasks[%d]", top.path, i),
				seed: top.seed.Subtasks[i],
			})
		}
	}
}
