package tui

// BuildInfo holds build-time metadata shown in the help dialog.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the build info as "version (commit, date)", leaving out
// unknown parts.
func (b BuildInfo) String() string {
	out := b.Version
	if out == "" {
		out = "dev"
	}
	switch {
	case b.Commit != "" && b.Date != "":
		out += " (" + b.Commit + ", " + b.Date + ")"
	case b.Commit != "":
		out += " (" + b.Commit + ")"
	}
	return out
}
