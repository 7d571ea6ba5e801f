package gorm

import (
	"gorm.io/gorm"

	"catalogd/pkg/model"
	"catalogd/pkg/server/store"
)

var _ store.ActionLogStore = (*ActionLogStore)(nil)

// ActionLogStore implements store.ActionLogStore using GORM
type ActionLogStore struct {
	db *gorm.DB
}

// NewActionLogStore creates a new ActionLogStore
func NewActionLogStore(db *gorm.DB) *ActionLogStore {
	return &ActionLogStore{db: db}
}

// RecentEntries returns the most recent entries, newest first
func (s *ActionLogStore) RecentEntries(limit int) ([]store.LogEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []model.ActionLogEntry
	err := s.db.Order("action_time DESC, id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]store.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, store.LogEntry{
			ID:         row.ID,
			ActionTime: row.ActionTime,
			Username:   row.Username,
			ObjectType: row.ObjectType,
			ObjectID:   row.ObjectID,
			ObjectRepr: row.ObjectRepr,
			ActionFlag: row.ActionFlag,
			Message:    row.Message,
		})
	}
	return entries, nil
}
