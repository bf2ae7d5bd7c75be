package models

import "time"

// Response is one answered question from a submitted ballot. The
// composite unique index makes a repeat submission from the same IP
// fail at the database even if two requests race past the
// already-voted check.
type Response struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ElectionID  string    `gorm:"size:16;not null;uniqueIndex:idx_response_unique" json:"election_id"`
	QuestionID  uint      `gorm:"not null;uniqueIndex:idx_response_unique" json:"question_id"`
	VoterIP     string    `gorm:"size:45;not null;uniqueIndex:idx_response_unique;index:idx_response_voter" json:"-"`
	Answer      string    `gorm:"size:500;not null" json:"answer"`
	SubmittedAt time.Time `json:"submitted_at"`
}
