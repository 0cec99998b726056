package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/internal/profiler"
	"github.com/colonyops/taskboard/internal/tui"
	"github.com/colonyops/taskboard/pkg/logutils"
)

// ErrNotTerminal is returned when the board is started without a terminal.
var ErrNotTerminal = errors.New("taskboard needs an interactive terminal; use 'taskboard ls' for scripted output")

type TuiCmd struct {
	flags  *Flags
	build  tui.BuildInfo
	source taskSource

	// flags
	interval     time.Duration
	history      int
	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	file := cmd.source.Flag()
	file.Local = true

	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "deadline-interval",
			Usage:       "override tui.deadline_interval for this run",
			Sources:     cli.EnvVars("TASKBOARD_DEADLINE_INTERVAL"),
			Local:       true,
			Destination: &cmd.interval,
		},
		&cli.IntFlag{
			Name:        "history",
			Usage:       "number of notifications kept in the history panel",
			Value:       notify.DefaultHistorySize,
			Local:       true,
			Destination: &cmd.history,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on 127.0.0.1 at this port (e.g., 6060)",
			Sources:     cli.EnvVars("TASKBOARD_PROFILER_PORT"),
			Local:       true,
			Destination: &cmd.profilerPort,
		},
		file,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	cfg := *cmd.flags.Config
	if cmd.interval > 0 {
		if cmd.interval < time.Second {
			return fmt.Errorf("deadline interval must be at least 1s, got %s", cmd.interval)
		}
		cfg.TUI.DeadlineInterval = cmd.interval
	}

	tree, err := cmd.source.Load(&cfg)
	if err != nil {
		return err
	}

	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	// stderr logging would draw over the board; hold it until exit
	if cmd.flags.LogFile == "" {
		prev := log.Logger
		var held *logutils.DeferredWriter
		log.Logger, held = logutils.Defer(prev)
		defer func() {
			log.Logger = prev
			_ = held.Flush(os.Stderr)
		}()
	}

	log.Info().
		Int("tasks", tree.Snapshot().Len()).
		Dur("deadline_interval", cfg.TUI.DeadlineInterval).
		Msg("starting board")

	m := tui.New(tui.Options{
		Config: &cfg,
		Tree:   tree,
		Store:  notify.NewMemoryStore(cmd.history),
		Build:  cmd.build,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
