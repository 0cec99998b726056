// Package initcmd implements the interactive first-run setup.
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Answers are the values collected by the wizard.
type Answers struct {
	Theme         string
	Interval      string
	HideCompleted bool
	Categories    string
}

// DefaultAnswers returns the answers matching the default config.
func DefaultAnswers() Answers {
	def := config.DefaultConfig()
	return Answers{
		Theme:      def.TUI.Theme,
		Interval:   def.TUI.DeadlineInterval.String(),
		Categories: strings.Join(def.CategoryNames(), ", "),
	}
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			WithTheme(styles.FormTheme()).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			p.Infof("Init cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Init cancelled")
				return nil
			}
			return err
		}
	}

	cfg, err := GenerateConfig(answers)
	if err != nil {
		return err
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := cfg.Save(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Add seed tasks under 'seed:' in %s (optional)", w.opts.ConfigPath)
	p.Printf("  2. Run 'taskboard' to open the board")

	return nil
}

func (w *Wizard) prompt(a *Answers) error {
	themeOptions := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&a.Theme),
		huh.NewInput().
			Title("Deadline check interval").
			Description("How often the board looks for overdue tasks, e.g. 30s or 5m").
			Validate(func(s string) error {
				_, err := parseInterval(s)
				return err
			}).
			Value(&a.Interval),
		huh.NewConfirm().
			Title("Hide completed tasks by default?").
			Value(&a.HideCompleted),
		huh.NewInput().
			Title("Categories").
			Description("Comma-separated category names").
			Value(&a.Categories),
	)).WithTheme(styles.FormTheme())

	return form.Run()
}

// GenerateConfig builds the config written by the wizard. Categories that
// match a built-in keep its color; new ones get a generated color.
func GenerateConfig(a Answers) (config.Config, error) {
	cfg := config.DefaultConfig()

	if _, ok := styles.GetPalette(a.Theme); !ok {
		return cfg, fmt.Errorf("unknown theme %q", a.Theme)
	}
	cfg.TUI.Theme = a.Theme

	interval, err := parseInterval(a.Interval)
	if err != nil {
		return cfg, err
	}
	cfg.TUI.DeadlineInterval = interval
	cfg.TUI.HideCompleted = a.HideCompleted

	builtin := make(map[string]task.Category)
	for _, c := range config.DefaultCategories() {
		builtin[c.Name] = c
	}

	cfg.Categories = []task.Category{}
	for i, name := range task.ParseTags(a.Categories) {
		if c, ok := builtin[name]; ok {
			cfg.Categories = append(cfg.Categories, c)
			continue
		}
		cfg.Categories = append(cfg.Categories, task.Category{
			ID:    name,
			Name:  name,
			Color: categoryColor(i),
		})
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid answers: %w", err)
	}
	return cfg, nil
}

// categoryColor spreads hues around the wheel using the golden angle.
func categoryColor(i int) string {
	hue := float64(i) * 137.508
	for hue >= 360 {
		hue -= 360
	}
	return colorful.Hcl(hue, 0.45, 0.72).Clamped().Hex()
}

func parseInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	if d < time.Second {
		return 0, fmt.Errorf("interval must be at least 1s, got %s", d)
	}
	return d, nil
}
