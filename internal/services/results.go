package services

import (
	"fmt"

	"github.com/Sandee004/Voterz/internal/models"

	"gorm.io/gorm"
)

type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

type QuestionResult struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	QuestionType string         `json:"question_type"`
	Options      []string       `json:"options"`
	Votes        map[string]int `json:"votes"`
}

type ElectionResults struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Questions []QuestionResult `json:"questions"`
}

// Tally counts votes per option for every question of an election the
// caller owns. Only answers matching a question's declared options
// are counted; anything else is discarded. Options nobody picked do
// not appear in the vote map.
func (s *ResultsService) Tally(electionID string, userID uint) (*ElectionResults, error) {
	var election models.Election
	if err := s.db.Where("id = ? AND user_id = ?", electionID, userID).First(&election).Error; err != nil {
		return nil, fmt.Errorf("%w: election", ErrNotFound)
	}

	var questions []models.Question
	err := s.db.Where("election_id = ?", electionID).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	var responses []models.Response
	if err := s.db.Where("election_id = ?", electionID).Find(&responses).Error; err != nil {
		return nil, err
	}

	results := ElectionResults{
		ID:        election.ID,
		Title:     election.Title,
		Questions: make([]QuestionResult, 0, len(questions)),
	}

	byQuestion := make(map[uint]int, len(questions))
	for i, q := range questions {
		byQuestion[q.ID] = i
		results.Questions = append(results.Questions, QuestionResult{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.OptionTexts(),
			Votes:        map[string]int{},
		})
	}

	for _, r := range responses {
		i, ok := byQuestion[r.QuestionID]
		if !ok {
			continue
		}
		question := &results.Questions[i]
		for _, opt := range question.Options {
			if r.Answer == opt {
				question.Votes[r.Answer]++
				break
			}
		}
	}

	return &results, nil
}
