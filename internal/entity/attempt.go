package entity

import (
	"time"

	"gorm.io/gorm"
)

// Attempt kinds. Every kind is normalized into the same row shape; quiz
// attempts additionally carry per-question QuizAnswer rows.
const (
	KindExam     = "exam"
	KindPractice = "practice"
	KindQuiz     = "quiz"
	KindAptitude = "aptitude"
)

// Attempt - one submitted attempt of any kind. Created once at submission,
// immutable afterward.
type Attempt struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	AttemptID string         `gorm:"uniqueIndex;size:64;not null" json:"attempt_id"`
	UserID    string         `gorm:"size:100;not null;index" json:"user_id"`
	Kind      string         `gorm:"size:20;not null;index" json:"kind"`
	Domain    string         `gorm:"size:50;index" json:"domain"` // aptitude, reasoning, cs, dsa, quiz, practice
	Topic     string         `gorm:"size:100;index" json:"topic"` // stored lowercase, spaces stripped
	Score     int            `gorm:"not null" json:"score"`
	Total     int            `gorm:"not null" json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// QuizAnswer - per-question correctness of a quiz attempt, kept so the
// weak-topic aggregation can count individual questions.
type QuizAnswer struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	AttemptID    string         `gorm:"size:64;not null;index" json:"attempt_id"`
	QuestionText string         `gorm:"type:text" json:"question_text"`
	Subtopic     string         `gorm:"size:100" json:"subtopic"`
	WasCorrect   bool           `gorm:"not null" json:"was_correct"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
