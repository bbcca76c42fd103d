package history

import "time"

// Action names what happened to a file.
type Action string

const (
	ActionMoved           Action = "moved"
	ActionMoveFailed      Action = "move_failed"
	ActionArchiveExpanded Action = "archive_expanded"
	ActionArchiveInvalid  Action = "archive_invalid"
	ActionArchiveFailed   Action = "archive_failed"
)

// Entry is one journaled action.
type Entry struct {
	ID        int64
	RunID     string
	Action    Action
	Source    string
	Target    string
	Category  string
	Year      string
	Error     string
	CreatedAt time.Time
}

// Failed reports whether the entry records a failure.
func (e Entry) Failed() bool {
	switch e.Action {
	case ActionMoveFailed, ActionArchiveInvalid, ActionArchiveFailed:
		return true
	default:
		return false
	}
}
