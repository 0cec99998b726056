package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/tui"
)

// NewRoot builds the taskboard command tree with global flags bound to flags.
// Running it with no subcommand opens the board. Callers attach Before and
// After hooks.
func NewRoot(flags *Flags, build tui.BuildInfo) *cli.Command {
	app := &cli.Command{
		Name:      "taskboard",
		Usage:     "Organize hierarchical tasks in the terminal",
		UsageText: "taskboard [global options] command [command options]",
		Description: `Taskboard keeps a tree of tasks with priorities, due dates, tags and
categories, and warns when a task slips past its deadline.

Run 'taskboard' with no arguments to open the interactive board.
Run 'taskboard init' to create a config file.`,
		Version: build.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKBOARD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty logs to stderr)",
				Sources:     cli.EnvVars("TASKBOARD_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yaml or .toml)",
				Sources:     cli.EnvVars("TASKBOARD_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags, build)

	app = NewLsCmd(flags).Register(app)
	app = NewOverdueCmd(flags).Register(app)
	app = NewWatchCmd(flags).Register(app)
	app = NewStatsCmd(flags).Register(app)
	app = NewInitCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskboard --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
