package repository

import (
	"github.com/examind/examind-be/internal/entity"
	"gorm.io/gorm"
)

type (
	AttemptRepository interface {
		Create(db *gorm.DB, attempt *entity.Attempt) error
		CreateQuizAnswers(db *gorm.DB, answers []entity.QuizAnswer) error

		// FindByUserID returns every attempt of the user, newest first.
		FindByUserID(db *gorm.DB, userID string) ([]entity.Attempt, error)
		// FindByUserIDAndKind returns the user's attempts of one kind in
		// chronological order, the shape the timeline builder wants.
		FindByUserIDAndKind(db *gorm.DB, userID, kind string) ([]entity.Attempt, error)
		FindQuizAnswersByAttemptIDs(db *gorm.DB, attemptIDs []string) ([]entity.QuizAnswer, error)
	}

	attemptRepository struct {
		db *gorm.DB
	}
)

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(db *gorm.DB, attempt *entity.Attempt) error {
	if db == nil {
		db = r.db
	}
	return db.Create(attempt).Error
}

func (r *attemptRepository) CreateQuizAnswers(db *gorm.DB, answers []entity.QuizAnswer) error {
	if db == nil {
		db = r.db
	}
	if len(answers) == 0 {
		return nil
	}
	return db.Create(&answers).Error
}

func (r *attemptRepository) FindByUserID(db *gorm.DB, userID string) ([]entity.Attempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.Attempt
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByUserIDAndKind(db *gorm.DB, userID, kind string) ([]entity.Attempt, error) {
	if db == nil {
		db = r.db
	}
	var attempts []entity.Attempt
	err := db.Where("user_id = ? AND kind = ?", userID, kind).Order("created_at ASC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindQuizAnswersByAttemptIDs(db *gorm.DB, attemptIDs []string) ([]entity.QuizAnswer, error) {
	if db == nil {
		db = r.db
	}
	if len(attemptIDs) == 0 {
		return nil, nil
	}
	var answers []entity.QuizAnswer
	err := db.Where("attempt_id IN ?", attemptIDs).Find(&answers).Error
	return answers, err
}
