package model

import "time"

// Item is a single to-do entry. Text is unique within its list but may
// repeat across lists; display order is ascending id (creation order).
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ListID    uint      `json:"list_id" gorm:"not null;uniqueIndex:idx_items_list_text,priority:1"`
	Text      string    `json:"text" gorm:"size:512;not null;uniqueIndex:idx_items_list_text,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}
