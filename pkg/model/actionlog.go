package model

import "time"

// Action flags for ActionLogEntry
const (
	ActionAddition = 1
	ActionChange   = 2
	ActionDeletion = 3
)

// ActionLogEntry records a single admin mutation
type ActionLogEntry struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ActionTime time.Time `gorm:"column:action_time;autoCreateTime"`
	Username   string    `gorm:"column:username;not null"`
	ObjectType string    `gorm:"column:object_type;not null"`
	ObjectID   int64     `gorm:"column:object_id;not null"`
	ObjectRepr string    `gorm:"column:object_repr;not null"`
	ActionFlag int       `gorm:"column:action_flag;not null"`
	Message    string    `gorm:"column:message;not null"`
}

func (ActionLogEntry) TableName() string {
	return "action_log"
}
