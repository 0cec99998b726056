package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantTask string
		wantView string
	}{
		{name: "empty", ctx: context.Background()},
		{
			name:     "task only",
			ctx:      WithTaskID(context.Background(), "abc123"),
			wantTask: "abc123",
		},
		{
			name:     "view only",
			ctx:      WithView(context.Background(), "calendar"),
			wantView: "calendar",
		},
		{
			name:     "both",
			ctx:      WithView(WithTaskID(context.Background(), "t1"), "list"),
			wantTask: "t1",
			wantView: "list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTask, GetTaskID(tt.ctx))
			assert.Equal(t, tt.wantView, GetView(tt.ctx))
		})
	}
}
