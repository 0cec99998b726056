package tui

const unknownViewType = "unknown"

// ViewType represents which view is active.
type ViewType int

const (
	ViewList ViewType = iota
	ViewStats
	ViewCalendar
)

// views lists the views in tab order.
var views = []ViewType{ViewList, ViewStats, ViewCalendar}

// String returns the lowercase name of the view.
func (v ViewType) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewStats:
		return "stats"
	case ViewCalendar:
		return "calendar"
	default:
		return unknownViewType
	}
}

// Next returns the view after v in tab order, wrapping around.
func (v ViewType) Next() ViewType {
	for i, candidate := range views {
		if candidate == v {
			return views[(i+1)%len(views)]
		}
	}
	return ViewList
}
