package model

import "time"

// ProjectMembership records delegated access to a project. Under the
// creator-ownership rule set these rows are administrative bookkeeping
// only; the policy evaluator does not consult them.
type ProjectMembership struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role;not null;default:member"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
