package models

import (
	"time"
)

// Guide is a standalone how-to write-up, unlike a RepairPost it has no
// comment thread attached.
type Guide struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	ItemName     string    `gorm:"not null" json:"item_name"`
	GuideContent string    `gorm:"type:text;not null" json:"guide_content"`
	Date         Date      `gorm:"type:date;not null" json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
