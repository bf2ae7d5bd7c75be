package services

import (
	"fmt"

	"github.com/Sandee004/Voterz/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	ElectionID   string   `json:"election_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
}

// BatchCreate validates every spec and the caller's ownership of
// every referenced election before touching the database, then
// inserts the whole batch in one transaction. Either all questions
// land or none do.
func (s *QuestionService) BatchCreate(userID uint, inputs []QuestionInput) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no questions given", ErrValidation)
	}

	electionIDs := make(map[string]bool)
	for _, in := range inputs {
		if in.ElectionID == "" || in.QuestionText == "" || in.QuestionType == "" || len(in.Options) == 0 {
			return fmt.Errorf("%w: invalid data format", ErrValidation)
		}
		electionIDs[in.ElectionID] = true
	}

	for id := range electionIDs {
		var election models.Election
		if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&election).Error; err != nil {
			return fmt.Errorf("%w: election", ErrNotFound)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			question := models.Question{
				ElectionID:   in.ElectionID,
				QuestionText: in.QuestionText,
				QuestionType: in.QuestionType,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for i, text := range in.Options {
				opt := models.Option{
					QuestionID: question.ID,
					Text:       text,
					OrderNum:   i,
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *QuestionService) ListByElection(electionID string, userID uint) ([]models.Question, error) {
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
	return questions, nil
}
