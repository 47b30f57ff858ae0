package models

import (
	"time"
)

// Comment is a single node in a repair post's discussion thread. Threads are
// never materialized server-side: each comment carries ParentID as the only
// structural link and clients rebuild the tree from the flat, date-ordered
// list.
//
// The parent self-reference uses ON DELETE SET NULL, so deleting a parent
// orphans its children (they stay retrievable with parent_id = null) instead
// of cascading.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	RepairPostID uint      `gorm:"not null;index" json:"repair_post_id"`
	ParentID     *uint     `gorm:"index" json:"parent_id"`
	Parent       *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
