package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type ProjectStatus -trimprefix ProjectStatus -transform snake -output project_status.gen.go

type ProjectStatus int

const (
	ProjectStatusActive ProjectStatus = iota
	ProjectStatusCompleted
	ProjectStatusPaused
)

// Project represents an annotation project. The creator owns the project
// and everything beneath it; CreatedBy is immutable after creation.
type Project struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;not null;default:active"`
	CreatedBy   string    `gorm:"column:created_by;not null;<-:create"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
