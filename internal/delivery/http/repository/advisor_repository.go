package repository

import (
	"github.com/examind/examind-be/internal/entity"
	"gorm.io/gorm"
)

type (
	AdvisorRepository interface {
		UpsertReport(db *gorm.DB, report *entity.AnalysisReport) error
		FindReportByUserID(db *gorm.DB, userID string) (*entity.AnalysisReport, error)
		CreateMessage(db *gorm.DB, message *entity.AdvisorMessage) error
		FindMessagesByUserID(db *gorm.DB, userID string, limit int) ([]entity.AdvisorMessage, error)
	}

	advisorRepository struct {
		db *gorm.DB
	}
)

func NewAdvisorRepository(db *gorm.DB) AdvisorRepository {
	return &advisorRepository{db: db}
}

func (r *advisorRepository) UpsertReport(db *gorm.DB, report *entity.AnalysisReport) error {
	if db == nil {
		db = r.db
	}
	return db.Where("user_id = ?", report.UserID).Assign(report).FirstOrCreate(report).Error
}

func (r *advisorRepository) FindReportByUserID(db *gorm.DB, userID string) (*entity.AnalysisReport, error) {
	if db == nil {
		db = r.db
	}
	var report entity.AnalysisReport
	err := db.Where("user_id = ?", userID).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *advisorRepository) CreateMessage(db *gorm.DB, message *entity.AdvisorMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Create(message).Error
}

// FindMessagesByUserID returns the user's most recent messages, at most
// limit of them, in chronological order. The query walks backwards from the
// newest row so a long chat keeps the latest turns, then the slice is
// reversed back to reading order.
func (r *advisorRepository) FindMessagesByUserID(db *gorm.DB, userID string, limit int) ([]entity.AdvisorMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.AdvisorMessage
	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	reverseMessages(messages)
	return messages, nil
}

func reverseMessages(messages []entity.AdvisorMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
