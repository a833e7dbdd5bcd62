package model

import "time"

// Annotation represents a drawn annotation on an image. Approved is
// tri-state: nil pending, true approved, false rejected. Payload holds
// the shape data as JSON, opaque to the policy core.
type Annotation struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ImageID    string    `gorm:"column:image_id;not null"`
	LabelID    string    `gorm:"column:label_id;not null"`
	CreatedBy  string    `gorm:"column:created_by;not null"`
	ReviewedBy *string   `gorm:"column:reviewed_by"`
	Approved   *bool     `gorm:"column:approved"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Annotation) TableName() string {
	return "annotations"
}
