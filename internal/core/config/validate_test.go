package config

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.applyDefaults()
	return &cfg
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
	assert.NoError(t, validConfig(t).ValidateDeep(""))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{
			name:      "interval too short",
			mutate:    func(c *Config) { c.TUI.DeadlineInterval = 100 * time.Millisecond },
			wantField: "tui.deadline_interval",
		},
		{
			name:      "date format without day",
			mutate:    func(c *Config) { c.TUI.DateFormat = "2006-01" },
			wantField: "tui.date_format",
		},
		{
			name:      "category without name",
			mutate:    func(c *Config) { c.Categories = append(c.Categories, task.Category{ID: "x"}) },
			wantField: "categories[3].name",
		},
		{
			name:      "duplicate category",
			mutate:    func(c *Config) { c.Categories = append(c.Categories, task.Category{Name: "work"}) },
			wantField: "categories[3].name",
		},
		{
			name:      "bad color",
			mutate:    func(c *Config) { c.Categories[0].Color = "blue-ish" },
			wantField: "categories[0].color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestValidateDeep_Seed(t *testing.T) {
	cfg := validConfig(t)
	cfg.Seed = []SeedTask{
		{
			Draft:  task.Draft{Title: "ok", Priority: task.PriorityLow},
			Status: task.StatusTodo,
			Subtasks: []SeedTask{
				{Draft: task.Draft{Title: " ", Priority: task.PriorityLow}, Status: task.StatusTodo},
				{Draft: task.Draft{Title: "x", Priority: "urgent"}, Status: "done"},
			},
		},
	}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)
	fields := []string{fieldErrs[0].Field, fieldErrs[1].Field, fieldErrs[2].Field}
	assert.ElementsMatch(t, []string{
		"seed[0].subtasks[0].title",
		"seed[0].subtasks[1].priority",
		"seed[0].subtasks[1].status",
	}, fields)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	err := validConfig(t).ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestWarnings_UnknownCategory(t *testing.T) {
	cfg := validConfig(t)
	cfg.Seed = []SeedTask{
		{Draft: task.Draft{Title: "a", Category: "work"}},
		{Draft: task.Draft{Title: "b"}, Subtasks: []SeedTask{{Draft: task.Draft{Title: "c", Category: "hobby"}}}},
	}

	warnings := cfg.Warnings()

	require.Len(t, warnings, 1)
	assert.Equal(t, "seed[1].subtasks[0]", warnings[0].Item)
	assert.Contains(t, warnings[0].Message, "hobby")
}
