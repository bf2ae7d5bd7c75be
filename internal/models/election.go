package models

import "time"

// Election IDs are short url-safe tokens generated at creation time,
// not autoincrement integers, so they can be shared in voting links
// without exposing a guessable sequence.
type Election struct {
	ID        string    `gorm:"primaryKey;size:16" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	IsBuilt   bool      `gorm:"not null;default:false" json:"is_built"`
	// Status is written on build for inspection only. Every read path
	// recomputes the lifecycle state from IsBuilt and the date range.
	Status    string     `gorm:"size:20" json:"-"`
	Questions []Question `gorm:"foreignKey:ElectionID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
