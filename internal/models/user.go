package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	OrgType      string    `gorm:"size:100;not null" json:"type"`
	OrgName      string    `gorm:"size:255;not null" json:"orgname"`
	CreatedAt    time.Time `json:"created_at"`
}
