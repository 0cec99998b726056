package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/pkg/iojson"
)

type LsCmd struct {
	flags  *Flags
	source taskSource
	now    func() time.Time

	// flags
	jsonOutput    bool
	hideCompleted bool
	showCompleted bool
	priorities    []string
	category      string
	tag           string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags, now: time.Now}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List tasks",
		UsageText: "taskboard ls [options]",
		Description: `Prints the task tree with the same filters the board uses.

Filters apply to top-level tasks; a matching task is printed with all of its
subtasks. Tasks come from the seed section of the config file, or from a JSON
array of seed tasks given with --file (use - for stdin).

Use --json for one JSON object per task.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "hide-completed",
				Usage:       "hide completed top-level tasks",
				Destination: &cmd.hideCompleted,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "show completed tasks even when the config hides them",
				Destination: &cmd.showCompleted,
			},
			&cli.StringSliceFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "only show these priorities (low, medium, high)",
				Destination: &cmd.priorities,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "only show tasks in this category",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "tag",
				Usage:       "only show tasks with a tag matching this glob",
				Destination: &cmd.tag,
			},
			cmd.source.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) filter() (task.Filter, error) {
	f := cmd.flags.Config.Filter()
	if cmd.hideCompleted {
		f.ShowCompleted = false
	}
	if cmd.showCompleted {
		f.ShowCompleted = true
	}

	priorities, err := parsePriorities(cmd.priorities)
	if err != nil {
		return f, err
	}
	f.Priority = priorities
	f.Category = cmd.category
	f.TagPattern = cmd.tag

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	f, err := cmd.filter()
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	tree, err := cmd.source.Load(cmd.flags.Config)
	if err != nil {
		return err
	}

	var (
		snap       = tree.Snapshot()
		visible    = task.VisibleTasks(snap.Roots(), f)
		out        = c.Root().Writer
		now        = cmd.now()
		dateFormat = cmd.flags.Config.TUI.DateFormat
	)

	if cmd.jsonOutput {
		var writeErr error
		snap.Walk(visible, func(t task.Task, depth int) bool {
			if writeErr == nil {
				writeErr = iojson.WriteLine(out, newTaskInfo(t, depth, now))
			}
			return writeErr == nil
		})
		if writeErr != nil {
			return fmt.Errorf("encode task: %w", writeErr)
		}
		return nil
	}

	if len(visible) == 0 {
		if snap.Len() == 0 {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, "No tasks found")
		} else {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, "No tasks match the filter")
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tSTATUS\tPRIORITY\tDUE\tTAGS\tCATEGORY")

	snap.Walk(visible, func(t task.Task, depth int) bool {
		due := formatDue(t, dateFormat)
		if t.Overdue(now) {
			due += " (overdue)"
		}
		category := t.Category
		if category == "" {
			category = "-"
		}
		tags := task.FormatTags(t.Tags)
		if tags == "" {
			tags = "-"
		}
		_, _ = fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.Repeat("  ", depth), t.Title, t.Status, t.Priority, due, tags, category)
		return true
	})

	return w.Flush()
}
