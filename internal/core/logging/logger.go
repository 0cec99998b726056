// Package logging holds the zerolog helpers shared by the CLI and the TUI.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ComponentKey is the field that names the subsystem emitting a log line.
const ComponentKey = "cmp"

// Component returns a child of the global logger tagged with name. It reads
// log.Logger at call time, so callers created after setup pick up the
// configured output.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str(ComponentKey, name).Logger()
}
