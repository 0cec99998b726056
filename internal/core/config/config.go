// Package config handles configuration loading and validation for taskboard.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/taskboard/internal/core/task"
)

// DefaultDateFormat is the Go layout used to show and parse due dates.
const DefaultDateFormat = "2006-01-02"

// Config holds the application configuration.
type Config struct {
	TUI        TUIConfig       `yaml:"tui" toml:"tui"`
	Categories []task.Category `yaml:"categories" toml:"categories"`
	Seed       []SeedTask      `yaml:"seed" toml:"seed"`
}

// TUIConfig controls the interactive view.
type TUIConfig struct {
	Theme            string        `yaml:"theme" toml:"theme"`
	DeadlineInterval time.Duration `yaml:"deadline_interval" toml:"deadline_interval"`
	HideCompleted    bool          `yaml:"hide_completed" toml:"hide_completed"`
	DateFormat       string        `yaml:"date_format" toml:"date_format"`
}

// SeedTask is a task created when the board starts. Subtasks nest to any
// depth; ParentID is ignored and derived from the nesting.
type SeedTask struct {
	task.Draft `yaml:",inline"`
	Status     task.Status `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	Subtasks   []SeedTask  `json:"subtasks,omitempty" yaml:"subtasks,omitempty" toml:"subtasks,omitempty"`
}

// DefaultCategories returns the built-in work/personal/other categories.
func DefaultCategories() []task.Category {
	return []task.Category{
		{ID: "work", Name: "work", Color: "#7aa2f7"},
		{ID: "personal", Name: "personal", Color: "#9ece6a"},
		{ID: "other", Name: "other", Color: "#a9b1d6"},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:            "tokyo-night",
			DeadlineInterval: 60 * time.Second,
			DateFormat:       DefaultDateFormat,
		},
		Categories: DefaultCategories(),
		Seed:       []SeedTask{},
	}
}

// IsTOML reports whether path names a TOML file. Every other path is
// treated as YAML.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read decodes the config file and applies defaults without validating.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := decode(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if IsTOML(path) {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes the configuration to path, creating parent directories. The
// format follows the file extension.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if IsTOML(path) {
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	} else {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.DeadlineInterval == 0 {
		c.TUI.DeadlineInterval = defaults.TUI.DeadlineInterval
	}
	if c.TUI.DateFormat == "" {
		c.TUI.DateFormat = defaults.TUI.DateFormat
	}
	if c.Categories == nil {
		c.Categories = defaults.Categories
	}
	for i := range c.Categories {
		if c.Categories[i].ID == "" {
			c.Categories[i].ID = uuid.NewString()
		}
	}

	stack := make([]*SeedTask, 0, len(c.Seed))
	for i := range c.Seed {
		stack = append(stack, &c.Seed[i])
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.Priority == "" {
			s.Priority = task.PriorityMedium
		}
		if s.Status == "" {
			s.Status = task.StatusTodo
		}
		for i := range s.Subtasks {
			stack = append(stack, &s.Subtasks[i])
		}
	}
}

// CategoryNames returns the configured category names in order.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Category returns the category with the given name.
func (c *Config) Category(name string) (task.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return task.Category{}, false
}

// Filter returns the initial filter for the board.
func (c *Config) Filter() task.Filter {
	f := task.DefaultFilter()
	f.ShowCompleted = !c.TUI.HideCompleted
	return f
}
