package models

import "time"

// User is a registered identity. Email is the unique login key and is
// compared case-sensitively.
type User struct {
	Base
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	UpdatedAt time.Time `json:"-"`
}
