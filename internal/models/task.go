package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo     TaskStatus = "todo"
	TaskStatusDoing    TaskStatus = "doing"
	TaskStatusInReview TaskStatus = "in_review"
	TaskStatusApproved TaskStatus = "approved"
	TaskStatusDone     TaskStatus = "done"
)

// TaskStatuses lists every accepted status value. The set is a flat
// classification: any status may be changed to any other.
var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusDoing,
	TaskStatusInReview,
	TaskStatusApproved,
	TaskStatusDone,
}

func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	ProjectID   string         `gorm:"type:varchar(36);not null;index" json:"projectId"`
	CreatedByID string         `gorm:"type:varchar(36);not null;index" json:"createdById"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project   Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedBy User           `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Assignees []TaskAssignee `gorm:"foreignKey:TaskID" json:"assignees,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
	return nil
}
