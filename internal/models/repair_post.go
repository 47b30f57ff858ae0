package models

import (
	"time"

	"github.com/lib/pq"
)

// RepairPost documents a single repair attempt: what broke, how it was fixed,
// and whether the fix held up.
type RepairPost struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"not null;index" json:"user_id"`
	ItemName         string         `gorm:"not null" json:"item_name"`
	IssueDescription string         `gorm:"type:text" json:"issue_description"`
	RepairSteps      string         `gorm:"type:text" json:"repair_steps"`
	Success          bool           `gorm:"not null;default:false" json:"success"`
	Date             Date           `gorm:"type:date;not null" json:"date"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	// constraint:- keeps repair_post_id a plain indexed column. Deleting a
	// post must not cascade into its comments or be blocked by them; the
	// thread just becomes unreachable through the API.
	Comments []Comment `gorm:"foreignKey:RepairPostID;constraint:-" json:"comments,omitempty"`
}
