package entity

import "github.com/examind/examind-be/internal/pkg/analytics"

type UserReport struct {
	UserID         string             `json:"user_id"`
	Analysis       analytics.Analysis `json:"analysis"`
	Recommendation string             `json:"recommendation"`
	GeneratedBy    string             `json:"generated_by"` // llm, fallback
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	UserID   string `json:"user_id"`
	Response string `json:"response"`
}

type ChatHistoryItem struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
