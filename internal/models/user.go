package models

import "gorm.io/gorm"

// User represents one registered coach account. Email is stored normalized
// (trimmed, lower-cased) and is the uniqueness and lookup key everywhere.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"type:varchar(64)"` // lowercase hex SHA-256, never serialized
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
