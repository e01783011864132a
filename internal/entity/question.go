package entity

import (
	"time"

	"gorm.io/gorm"
)

// BankQuestion - one question of the bank served to adaptive assignments.
// Difficulty and Subtopic are optional tags; when absent they are inferred
// from the question text at sampling time.
type BankQuestion struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Domain      string         `gorm:"size:50;not null;index" json:"domain"`
	Topic       string         `gorm:"size:100;not null;index" json:"topic"` // lowercase, spaces stripped
	Text        string         `gorm:"type:text;not null" json:"text"`
	Options     string         `gorm:"type:text;not null" json:"options"` // JSON array of option strings
	Answer      string         `gorm:"size:255;not null" json:"answer"`   // the correct option string
	Explanation string         `gorm:"type:text" json:"explanation"`
	Subtopic    string         `gorm:"size:100" json:"subtopic"`
	Difficulty  string         `gorm:"size:20;index" json:"difficulty"` // beginner, intermediate, advanced, or empty
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (BankQuestion) TableName() string {
	return "bank_questions"
}
