package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies task_id and view from the event context into log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if taskID := GetTaskID(ctx); taskID != "" {
		e.Str(string(taskIDKey), taskID)
	}
	if view := GetView(ctx); view != "" {
		e.Str(string(viewKey), view)
	}
}
