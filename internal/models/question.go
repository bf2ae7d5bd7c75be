package models

type Question struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	ElectionID   string   `gorm:"size:16;not null;index" json:"election_id"`
	QuestionText string   `gorm:"type:text;not null" json:"question_text"`
	QuestionType string   `gorm:"size:50;not null" json:"question_type"`
	Options      []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

// OptionTexts returns the declared options in authored order.
func (q *Question) OptionTexts() []string {
	texts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		texts = append(texts, o.Text)
	}
	return texts
}
