package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token is a one-time login credential mapping an opaque uid to an email.
// A new Token is created on every login-link request; many tokens may map
// to the same email.
type Token struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	UID       string    `json:"uid" gorm:"column:uid;size:40;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a fresh opaque uid if none was supplied.
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.UID == "" {
		t.UID = uuid.New().String()
	}
	return nil
}
