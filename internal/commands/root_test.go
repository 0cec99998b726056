package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/tui"
)

func TestNewRoot_Commands(t *testing.T) {
	root := NewRoot(&Flags{}, tui.BuildInfo{Version: "1.2.3"})

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ls", "overdue", "watch", "stats", "init", "config"}, names)
	assert.Equal(t, "1.2.3", root.Version)
	require.NotNil(t, root.Action)
}

func TestNewRoot_FlagsBindDestinations(t *testing.T) {
	flags := &Flags{}
	root := NewRoot(flags, tui.BuildInfo{})
	root.Commands = nil
	root.Action = func(context.Context, *cli.Command) error { return nil }

	err := root.Run(context.Background(), []string{"taskboard", "--log-level", "debug", "-c", "/tmp/tb.toml", "--log-file", ""})
	require.NoError(t, err)

	assert.Equal(t, "debug", flags.LogLevel)
	assert.Equal(t, "/tmp/tb.toml", flags.ConfigPath)
	assert.Empty(t, flags.LogFile)
}

func TestNewRoot_UnknownCommand(t *testing.T) {
	root := NewRoot(&Flags{}, tui.BuildInfo{})
	root.Commands = nil

	err := root.Run(context.Background(), []string{"taskboard", "bogus"})
	require.ErrorContains(t, err, `unknown command "bogus"`)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  deadline_interval: 1ms\n"), 0o644))

	tests := []struct {
		command string
		wantErr bool
	}{
		{command: "init"},
		{command: "config"},
		{command: "ls", wantErr: true},
		{command: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("command "+tt.command, func(t *testing.T) {
			flags := &Flags{ConfigPath: path}

			err := LoadConfig(flags, tt.command)

			require.NotNil(t, flags.Config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "deadline_interval")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Millisecond, flags.Config.TUI.DeadlineInterval)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	flags := &Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}

	require.NoError(t, LoadConfig(flags, "ls"))
	assert.Equal(t, config.DefaultConfig().TUI, flags.Config.TUI)
}
