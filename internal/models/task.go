package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
)

type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"size:200;not null" json:"title"`
	Description *string              `gorm:"type:text" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:todo;index" json:"status"`
	Priority    constants.Priority   `gorm:"not null;default:3" json:"priority"`
	CreatedAt   time.Time            `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   *time.Time           `gorm:"autoUpdateTime:false" json:"updated_at"`
	DueDate     *time.Time           `gorm:"index" json:"due_date"`
}

func (Task) TableName() string {
	return "tasks"
}

// AfterFind rejects rows whose stored status is outside the known set.
func (t *Task) AfterFind(_ *gorm.DB) error {
	if !t.Status.Valid() {
		return fmt.Errorf("task %d has unknown stored status %q", t.ID, t.Status)
	}
	return nil
}
