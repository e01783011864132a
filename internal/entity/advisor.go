package entity

import (
	"time"

	"gorm.io/gorm"
)

// AnalysisReport - per-user cached report backing the study advisor, so chat
// turns do not recompute or re-prompt for the analysis context.
type AnalysisReport struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          string         `gorm:"uniqueIndex;size:100;not null" json:"user_id"`
	PredictedScore  float64        `json:"predicted_score"`
	PassProbability float64        `json:"pass_probability"`
	WeakTopics      string         `gorm:"type:text" json:"weak_topics"` // JSON array of weak-topic entries
	Recommendation  string         `gorm:"type:text" json:"recommendation"`
	GeneratedBy     string         `gorm:"size:20;default:fallback" json:"generated_by"` // llm, fallback
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AnalysisReport) TableName() string {
	return "analysis_reports"
}

// AdvisorMessage - advisor chat history per user.
type AdvisorMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    string         `gorm:"size:100;not null;index" json:"user_id"`
	Role      string         `gorm:"size:20;not null" json:"role"` // user, assistant
	Message   string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AdvisorMessage) TableName() string {
	return "advisor_messages"
}
