// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Email is the login key; Name is also
// checked for uniqueness at registration time. The bcrypt password hash is
// serialized as-is because the admin surface returns users without projection.
//
// Deletes are permanent. A soft delete would keep the row under the unique
// indexes and lock the name and email out of registration forever.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
