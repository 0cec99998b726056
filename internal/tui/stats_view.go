package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

const statsBarWidth = 40

// renderStatsView draws the completion summary: the rate, a completed versus
// incomplete bar and per status and priority counts.
func renderStatsView(snap *task.Snapshot, now time.Time, width int) string {
	sum := task.Summarize(snap, now)
	if sum.Total == 0 {
		return styles.EmptyStateStyle.Render("No tasks yet. Press a in the list view to add one.")
	}

	barWidth := min(statsBarWidth, max(width-10, 10))
	lines := []string{
		styles.ModalTitleStyle.Render("Completion"),
		fmt.Sprintf("%s %d%%", renderBar(sum.Completed, sum.Total, barWidth), sum.RoundedRate()),
		fmt.Sprintf("%d of %d tasks completed, %d incomplete", sum.Completed, sum.Total, sum.Incomplete()),
		"",
		styles.ModalTitleStyle.Render("By status"),
		statLine("todo", sum.Todo),
		statLine("in progress", sum.InProgress),
		statLine("completed", sum.Completed),
		"",
		styles.ModalTitleStyle.Render("By priority"),
	}
	for _, p := range task.Priorities {
		lines = append(lines, statLine(styles.PriorityStyle(p).Render(string(p)), sum.ByPriority[p]))
	}

	overdue := fmt.Sprintf("%d", sum.Overdue)
	if sum.Overdue > 0 {
		overdue = styles.DueOverdueStyle.Render(overdue)
	}
	lines = append(lines, "", styles.DetailLabelStyle.Width(14).Render("overdue")+overdue)

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func statLine(label string, n int) string {
	return styles.DetailLabelStyle.Width(14).Render(label) + fmt.Sprintf("%d", n)
}

// renderBar draws a horizontal bar with done/total of its width filled.
func renderBar(done, total, width int) string {
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	return styles.StatsBarDoneStyle.Render(strings.Repeat("█", filled)) +
		styles.StatsBarTodoStyle.Render(strings.Repeat("░", width-filled))
}
