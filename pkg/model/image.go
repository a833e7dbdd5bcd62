package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type ImageStatus -trimprefix ImageStatus -transform snake -output image_status.gen.go

type ImageStatus int

const (
	ImageStatusPending ImageStatus = iota
	ImageStatusInProgress
	ImageStatusCompleted
	ImageStatusReviewed
	ImageStatusRejected
)

// Image represents an uploaded image within a project. The bytes live in
// the blob store under ObjectKey; the row carries only metadata.
type Image struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ProjectID  string    `gorm:"column:project_id;not null"`
	ObjectKey  string    `gorm:"column:object_key;not null"`
	Filename   string    `gorm:"column:filename;not null"`
	Width      int       `gorm:"column:width"`
	Height     int       `gorm:"column:height"`
	Status     string    `gorm:"column:status;not null;default:pending"`
	UploadedBy string    `gorm:"column:uploaded_by;not null"`
	AssignedTo *string   `gorm:"column:assigned_to"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Image) TableName() string {
	return "images"
}
