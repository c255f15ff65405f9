package model

import "time"

// User is an identity keyed by email. There is no password: users are
// created implicitly the first time a login token for their email is
// redeemed, and are never deleted by the application.
type User struct {
	Email     string    `json:"email" gorm:"primaryKey;size:255"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Lists []List `json:"lists,omitempty" gorm:"foreignKey:OwnerEmail"`
}
