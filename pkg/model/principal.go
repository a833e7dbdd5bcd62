package model

import "time"

// Global roles a principal can hold.
const (
	RoleAdmin     = "admin"
	RoleAnnotator = "annotator"
	RoleReviewer  = "reviewer"
)

// Principal represents an authenticated actor in LabelForge
type Principal struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Login     string    `gorm:"column:login;not null;uniqueIndex"`
	Role      string    `gorm:"column:role;not null;default:annotator"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Principal) TableName() string {
	return "principals"
}
