package model

import (
	"fmt"
	"time"
)

// List is a to-do list, optionally owned by a User. Deleting the owner
// clears OwnerEmail but leaves the list in place.
type List struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OwnerEmail *string   `json:"owner_email,omitempty" gorm:"size:255;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Owner *User  `json:"-" gorm:"foreignKey:OwnerEmail;references:Email;constraint:OnDelete:SET NULL"`
	Items []Item `json:"items,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// URL returns the canonical view URL for the list.
func (l *List) URL() string {
	return fmt.Sprintf("/lists/%d/", l.ID)
}

// ListName returns the display name of a list given its items in display
// order: the text of the first item. Lists are always created together with
// their first item, so an empty slice only occurs for malformed data; it
// yields the empty string.
func ListName(items []Item) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Text
}
