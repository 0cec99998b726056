package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

// tasksByDay groups the tasks of every depth that are due in the month of
// now, keyed by day of month, in tree order.
func tasksByDay(snap *task.Snapshot, now time.Time) map[int][]task.Task {
	year, month, _ := now.Date()
	out := make(map[int][]task.Task)
	for _, t := range snap.All() {
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(now.Location())
		if due.Year() == year && due.Month() == month {
			out[due.Day()] = append(out[due.Day()], t)
		}
	}
	return out
}

// renderCalendarView draws a month grid for now with a marker on days that
// have tasks due, followed by the due tasks grouped by day.
func renderCalendarView(snap *task.Snapshot, now time.Time) string {
	byDay := tasksByDay(snap, now)

	grid := renderMonthGrid(now, byDay)

	var agenda []string
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= days; day++ {
		due := byDay[day]
		if len(due) == 0 {
			continue
		}
		date := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
		agenda = append(agenda, styles.ModalTitleStyle.Render(date.Format("Mon Jan 2")))
		for _, t := range due {
			agenda = append(agenda, "  "+renderAgendaItem(t, now))
		}
	}
	if len(agenda) == 0 {
		agenda = append(agenda, styles.TextMutedStyle.Render("Nothing due this month"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, grid, "    ", strings.Join(agenda, "\n")),
	)
}

func renderAgendaItem(t task.Task, now time.Time) string {
	box := styles.IconUnchecked
	title := styles.TaskTitleStyle.Render(t.Title)
	switch {
	case t.Completed():
		box = styles.IconChecked
		title = styles.TaskDoneStyle.Render(t.Title)
	case t.Overdue(now):
		title = styles.DueOverdueStyle.Render(t.Title)
	}
	return box + " " + title + " " + styles.PriorityStyle(t.Priority).Render(string(t.Priority))
}

func renderMonthGrid(now time.Time, byDay map[int][]task.Task) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()

	lines := []string{
		styles.ModalTitleStyle.Render(styles.IconCalendar + " " + now.Format("January 2006")),
		styles.TextMutedStyle.Render("Su Mo Tu We Th Fr Sa"),
	}

	cells := make([]string, 0, 7)
	for range int(first.Weekday()) {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == now.Day():
			cell = styles.CalendarTodayStyle.Render(cell)
		case len(byDay[day]) > 0:
			cell = styles.TextWarningStyle.Bold(true).Render(cell)
		}
		cells = append(cells, cell)

		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}
