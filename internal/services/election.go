package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/Sandee004/Voterz/internal/models"

	"gorm.io/gorm"
)

type ElectionService struct {
	db *gorm.DB
}

func NewElectionService(db *gorm.DB) *ElectionService {
	return &ElectionService{db: db}
}

// newElectionID returns a short url-safe token, e.g. "pZ3kQx1".
func newElectionID() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *ElectionService) Create(userID uint, title string, startDate, endDate time.Time) (*models.Election, error) {
	id, err := newElectionID()
	if err != nil {
		return nil, err
	}

	election := models.Election{
		ID:        id,
		UserID:    userID,
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		IsBuilt:   false,
		Status:    StatusUpcoming,
	}
	if err := s.db.Create(&election).Error; err != nil {
		return nil, err
	}
	return &election, nil
}

func (s *ElectionService) ListByOwner(userID uint) ([]models.Election, error) {
	var elections []models.Election
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&elections).Error
	if err != nil {
		return nil, err
	}
	return elections, nil
}

// GetOwned loads an election with its questions, but only for the
// owner. A missing election and someone else's election are the same
// error on purpose.
func (s *ElectionService) GetOwned(electionID string, userID uint) (*models.Election, error) {
	var election models.Election
	err := s.db.Where("id = ? AND user_id = ?", electionID, userID).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions").
		First(&election).Error
	if err != nil {
		return nil, fmt.Errorf("%w: election", ErrNotFound)
	}
	return &election, nil
}

// GetPublic loads an election with its questions and owner for the
// public voting page. No ownership check.
func (s *ElectionService) GetPublic(electionID string) (*models.Election, error) {
	var election models.Election
	err := s.db.Where("id = ?", electionID).
		Preload("User").
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions").
		First(&election).Error
	if err != nil {
		return nil, fmt.Errorf("%w: election", ErrNotFound)
	}
	return &election, nil
}

// Build flips is_built from false to true, exactly once. The read and
// the write share a transaction so two concurrent builds cannot both
// see is_built=false and both succeed.
func (s *ElectionService) Build(electionID string, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var election models.Election
		err := tx.Where("id = ? AND user_id = ?", electionID, userID).First(&election).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: election", ErrNotFound)
		}
		if err != nil {
			return err
		}

		if election.IsBuilt {
			return fmt.Errorf("%w: election is already built", ErrConflict)
		}

		election.IsBuilt = true
		return tx.Model(&election).Updates(map[string]interface{}{
			"is_built": true,
			// Cosmetic snapshot; readers recompute from dates.
			"status": ElectionStatus(&election, time.Now()),
		}).Error
	})
}
