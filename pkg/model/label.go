package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type AnnotationType -trimprefix AnnotationType -transform snake -output annotation_type.gen.go

type AnnotationType int

const (
	AnnotationTypeBbox AnnotationType = iota
	AnnotationTypePolygon
	AnnotationTypeKeypoint
	AnnotationTypeClassification
	AnnotationTypeMask
)

// Label represents an annotation class within a project. Names are unique
// per project, enforced by the labels_project_id_name_key constraint.
type Label struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ProjectID string    `gorm:"column:project_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	Color     string    `gorm:"column:color;not null"`
	Type      string    `gorm:"column:annotation_type;not null;default:bbox"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Label) TableName() string {
	return "labels"
}
