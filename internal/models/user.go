// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered member of the RepairHub community.
//
// Passwords are stored as the opaque value supplied at registration and are
// never serialized. Records are hard-deleted; there is no soft-delete column.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// constraint:- keeps these as plain indexed columns. Deleting a user must
	// neither cascade into their content nor be blocked by it.
	RepairPosts []RepairPost `gorm:"foreignKey:UserID;constraint:-" json:"repair_posts,omitempty"`
	Guides      []Guide      `gorm:"foreignKey:UserID;constraint:-" json:"guides,omitempty"`
	UserBadges  []UserBadge  `gorm:"foreignKey:UserID;constraint:-" json:"user_badges,omitempty"`
}

// UserSummary is the trimmed representation returned by the public user list.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary returns the public list representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
