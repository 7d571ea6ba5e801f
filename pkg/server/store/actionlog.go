package store

import "time"

// LogEntry represents a recorded admin action
type LogEntry struct {
	ID         int64
	ActionTime time.Time
	Username   string
	ObjectType string
	ObjectID   int64
	ObjectRepr string
	ActionFlag int
	Message    string
}

// ActionLogStore abstracts read access to the admin action log
type ActionLogStore interface {
	// RecentEntries returns the most recent entries, newest first
	RecentEntries(limit int) ([]LogEntry, error)
}
