package entity

import "github.com/examind/examind-be/internal/pkg/analytics"

// TopicRandom asks the sampler to draw from every topic of the domain.
const TopicRandom = "random"

type StartAssignmentRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Domain string `json:"domain" validate:"required,oneof=aptitude reasoning cs dsa"`
	Topic  string `json:"topic" validate:"required"`
	Limit  int    `json:"limit"`
}

// AssignmentPreview mirrors the pre-start screen payload: what the sampler
// would target, without drawing any questions.
type AssignmentPreview struct {
	Domain          string                 `json:"domain"`
	Topic           string                 `json:"topic"`
	Limit           int                    `json:"limit"`
	Mastery         float64                `json:"mastery"`
	Predicted       float64                `json:"predicted"`
	Mix             analytics.Mix          `json:"mix"`
	TargetCounts    analytics.BucketCounts `json:"targetCounts"`
	AvailableCounts analytics.BucketCounts `json:"availableCounts"`
}

type AssignmentQuestions struct {
	Domain    string                       `json:"domain"`
	Topic     string                       `json:"topic"`
	Count     int                          `json:"count"`
	Questions []analytics.SelectedQuestion `json:"questions"`
}
