package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/deadline"
	"github.com/colonyops/taskboard/internal/printer"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type OverdueCmd struct {
	flags  *Flags
	source taskSource
	now    func() time.Time

	// flags
	jsonOutput bool
	at         string
	fail       bool
}

// NewOverdueCmd creates a new overdue command.
func NewOverdueCmd(flags *Flags) *OverdueCmd {
	return &OverdueCmd{flags: flags, now: time.Now}
}

// Register adds the overdue command to the application.
func (cmd *OverdueCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "overdue",
		Usage:     "List incomplete tasks past their due date",
		UsageText: "taskboard overdue [options]",
		Description: `Runs the same deadline check as the board and prints one warning per
overdue task, at any depth.

Use --at to check against another point in time and --fail to exit with
status 1 when anything is overdue.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "at",
				Usage:       "check as of this time (RFC 3339 or the configured date format)",
				Destination: &cmd.at,
			},
			&cli.BoolFlag{
				Name:        "fail",
				Usage:       "exit with status 1 when any task is overdue",
				Destination: &cmd.fail,
			},
			cmd.source.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *OverdueCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	at, err := parseAt(cmd.at, cfg.TUI.DateFormat, cmd.now)
	if err != nil {
		return err
	}

	tree, err := cmd.source.Load(cfg)
	if err != nil {
		return err
	}

	snap := tree.Snapshot()
	found := deadline.Check(snap, at)

	if cmd.jsonOutput {
		out := c.Root().Writer
		for _, n := range found {
			if err := iojson.WriteLine(out, n); err != nil {
				return fmt.Errorf("encode notification: %w", err)
			}
		}
	} else {
		p := printer.Ctx(ctx)
		if len(found) == 0 {
			p.Successf("Nothing is overdue")
		} else {
			p.Section(fmt.Sprintf("Overdue (%d)", len(found)))
			for _, n := range found {
				t, _ := snap.Get(n.TaskID)
				p.Warnf("%s (due %s)", t.Title, formatDue(t, cfg.TUI.DateFormat))
			}
		}
	}

	if cmd.fail && len(found) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
