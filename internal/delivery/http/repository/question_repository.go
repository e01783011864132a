package repository

import (
	"github.com/examind/examind-be/internal/entity"
	"gorm.io/gorm"
)

type (
	QuestionRepository interface {
		Create(db *gorm.DB, question *entity.BankQuestion) error
		// FindByDomainAndTopic expects a normalized topic (lowercase, spaces
		// stripped), which is how topics are stored.
		FindByDomainAndTopic(db *gorm.DB, domain, topic string) ([]entity.BankQuestion, error)
		FindByDomain(db *gorm.DB, domain string) ([]entity.BankQuestion, error)
		CountAll(db *gorm.DB) (int64, error)
	}

	questionRepository struct {
		db *gorm.DB
	}
)

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(db *gorm.DB, question *entity.BankQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *questionRepository) FindByDomainAndTopic(db *gorm.DB, domain, topic string) ([]entity.BankQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.BankQuestion
	err := db.Where("domain = ? AND topic = ?", domain, topic).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByDomain(db *gorm.DB, domain string) ([]entity.BankQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.BankQuestion
	err := db.Where("domain = ?", domain).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountAll(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.BankQuestion{}).Count(&count).Error
	return count, err
}
