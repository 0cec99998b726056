package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/deadline"
	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/notify"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type WatchCmd struct {
	flags  *Flags
	source taskSource

	// flags
	jsonOutput bool
	interval   time.Duration
}

// NewWatchCmd creates a new watch command.
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Register adds the watch command to the application.
func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Print deadline alerts as tasks become overdue",
		UsageText: "taskboard watch [options]",
		Description: `Runs the deadline checker in the foreground. Each task is reported once,
when it first becomes overdue. Stops on interrupt.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "time between checks (defaults to tui.deadline_interval)",
				Destination: &cmd.interval,
			},
			cmd.source.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	tree, err := cmd.source.Load(cmd.flags.Config)
	if err != nil {
		return err
	}

	interval := cmd.interval
	if interval == 0 {
		interval = cmd.flags.Config.TUI.DeadlineInterval
	}
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", interval)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.Component("watch")
	log.Info().Dur("interval", interval).Int("tasks", tree.Snapshot().Len()).Msg("watching deadlines")

	a := &alerter{
		out:        c.Root().Writer,
		jsonOutput: cmd.jsonOutput,
		history:    notify.NewMemoryStore(notify.DefaultHistorySize),
	}
	checker := deadline.NewChecker(log, interval, tree.Snapshot, func(found []notify.Notification) {
		if err := a.Receive(ctx, found); err != nil {
			log.Error().Err(err).Msg("failed to report deadline alerts")
		}
	})
	checker.Run(ctx)
	return nil
}

// alerter reports tasks that became overdue since the previous check.
type alerter struct {
	out        io.Writer
	jsonOutput bool
	history    notify.Store

	overdue []notify.Notification
}

// Receive takes the full overdue set from a check and writes the additions.
func (a *alerter) Receive(ctx context.Context, found []notify.Notification) error {
	added := deadline.Added(a.overdue, found)
	a.overdue = found

	for _, n := range added {
		id, err := a.history.Save(ctx, n)
		if err != nil {
			return fmt.Errorf("record alert: %w", err)
		}
		n.ID = id

		if a.jsonOutput {
			err = iojson.WriteLine(a.out, n)
		} else {
			_, err = fmt.Fprintf(a.out, "%s  %s\n", n.CreatedAt.Format(time.DateTime), n.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
