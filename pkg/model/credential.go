package model

// Credential holds the password hash for a principal
type Credential struct {
	PrincipalID  string `gorm:"column:principal_id;primaryKey"`
	PasswordHash []byte `gorm:"column:password_hash;not null"`
}

func (Credential) TableName() string {
	return "credentials"
}
