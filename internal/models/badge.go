package models

import (
	"time"
)

// Badge variants mirror the display styles the web client knows about.
const (
	BadgeVariantDefault   = "default"
	BadgeVariantSecondary = "secondary"
	BadgeVariantOutline   = "outline"
)

// Badge is an achievement users can earn.
type Badge struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Variant     string `gorm:"size:20;not null;default:default" json:"variant"`

	UserBadges []UserBadge `gorm:"foreignKey:BadgeID;constraint:-" json:"-"`
}

// UserBadge links a user to an earned badge. The composite unique index keeps
// a (user, badge) pair from being awarded twice.
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID  uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	EarnedAt time.Time `gorm:"not null" json:"earned_at"`
	Badge    Badge     `gorm:"foreignKey:BadgeID;constraint:-" json:"badge"`
}
