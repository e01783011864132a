package database

import (
	"github.com/examind/examind-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Attempt{},
		&entity.QuizAnswer{},
		&entity.BankQuestion{},
		&entity.AnalysisReport{},
		&entity.AdvisorMessage{},
	)
	return err
}
