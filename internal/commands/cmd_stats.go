package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type StatsCmd struct {
	flags  *Flags
	source taskSource
	now    func() time.Time

	jsonOutput bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags, now: time.Now}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "stats",
		Usage:       "Summarize task counts",
		UsageText:   "taskboard stats [--json]",
		Description: "Counts tasks at every depth by status and priority, plus the completion rate.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			cmd.source.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	tree, err := cmd.source.Load(cmd.flags.Config)
	if err != nil {
		return err
	}

	sum := task.Summarize(tree.Snapshot(), cmd.now())
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, struct {
			task.Summary
			CompletionRate int `json:"completion_rate"`
		}{sum, sum.RoundedRate()})
	}

	_, _ = fmt.Fprintf(out, "Total:       %d\n", sum.Total)
	_, _ = fmt.Fprintf(out, "Completed:   %d (%d%%)\n", sum.Completed, sum.RoundedRate())
	_, _ = fmt.Fprintf(out, "In progress: %d\n", sum.InProgress)
	_, _ = fmt.Fprintf(out, "Todo:        %d\n", sum.Todo)
	_, _ = fmt.Fprintf(out, "Overdue:     %d\n", sum.Overdue)
	for _, p := range task.Priorities {
		_, _ = fmt.Fprintf(out, "%-12s %d\n", string(p)+":", sum.ByPriority[p])
	}
	return nil
}
