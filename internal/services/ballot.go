package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sandee004/Voterz/internal/models"

	"gorm.io/gorm"
)

type BallotService struct {
	db *gorm.DB
}

func NewBallotService(db *gorm.DB) *BallotService {
	return &BallotService{db: db}
}

type AnswerInput struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// Submit records one anonymous ballot. The voter is identified only
// by source IP; a second ballot from the same IP for the same
// election is rejected. The already-voted check and the inserts share
// a transaction, and the responses table carries a unique index on
// (election_id, question_id, voter_ip), so two racing submissions
// cannot both commit.
func (s *BallotService) Submit(electionID, voterIP string, answers []AnswerInput) error {
	if electionID == "" || len(answers) == 0 {
		return fmt.Errorf("%w: invalid data", ErrValidation)
	}

	var election models.Election
	if err := s.db.Where("id = ?", electionID).First(&election).Error; err != nil {
		return fmt.Errorf("%w: election", ErrNotFound)
	}

	submittedAt := time.Now().UTC()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Response
		err := tx.Where("election_id = ? AND voter_ip = ?", electionID, voterIP).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: you have already submitted a ballot for this election", ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		for _, a := range answers {
			response := models.Response{
				ElectionID:  electionID,
				QuestionID:  a.QuestionID,
				VoterIP:     voterIP,
				Answer:      a.Answer,
				SubmittedAt: submittedAt,
			}
			if err := tx.Create(&response).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race to a concurrent ballot from the same IP.
		return fmt.Errorf("%w: you have already submitted a ballot for this election", ErrConflict)
	}
	return err
}
