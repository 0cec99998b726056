package styles

// Task list glyphs. Plain unicode so no patched font is required.
var (
	IconExpanded   = "▾"
	IconCollapsed  = "▸"
	IconLeaf       = " "
	IconChecked    = "[x]"
	IconUnchecked  = "[ ]"
	IconInProgress = "[~]"
	IconBell       = "🔔"
	IconCalendar   = "📅"
	IconCursor     = "›"
	IconIndent     = "  "
)

// Notification level glyphs.
var (
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✖"
)
