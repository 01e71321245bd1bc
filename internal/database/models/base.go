package models

import (
	"time"
)

// BaseModel provides the serial primary key and timestamps shared by all tables
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IdentityBase is the column set common to the three identity partitions.
// Email is unique per table; global uniqueness is enforced at registration.
type IdentityBase struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	FirstName    string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string `json:"phone,omitempty" gorm:"size:30"`
	Active       bool   `json:"active" gorm:"not null;default:true"`
}
