package user

import (
	"time"
)

// User represents a registered account. The password hash is opaque to every
// layer above the credential store and is never serialized outward.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null;type:text"`
	PasswordHash string `gorm:"not null;type:text"`
	CreatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Claims represents the validated identity carried by a bearer token.
type Claims struct {
	Username string `json:"username"`
}
