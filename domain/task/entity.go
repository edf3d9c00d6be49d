package task

import (
	"time"
)

// Task represents a tracked task. ID and CreationTime are assigned by the
// store on insert and never change afterwards. Status is stored verbatim;
// "pending", "in-progress" and "done" are conventions, not an enum. Lower
// priority numbers mean higher priority.
type Task struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null;type:text" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	Status       string    `gorm:"not null;type:text" json:"status"`
	Priority     int       `gorm:"not null" json:"priority"`
	CreationTime time.Time `gorm:"column:creation_time;not null" json:"creation_time"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
