package entity

import "github.com/examind/examind-be/internal/pkg/analytics"

// Known attempt domains. Requests validate against this set.
const (
	DomainAptitude  = "aptitude"
	DomainReasoning = "reasoning"
	DomainCS        = "cs"
	DomainDSA       = "dsa"
	DomainQuiz      = "quiz"
	DomainPractice  = "practice"
)

type AnsweredQuestionPayload struct {
	QuestionText  string `json:"question_text"`
	Subtopic      string `json:"subtopic"`
	SelectedIndex *int   `json:"selected_index"`
	CorrectIndex  *int   `json:"correct_index"`
}

type SubmitExamRequest struct {
	UserID  string                    `json:"user_id" validate:"required"`
	Domain  string                    `json:"domain" validate:"required,oneof=aptitude reasoning cs dsa"`
	Topic   string                    `json:"topic" validate:"required"`
	Score   int                       `json:"score" validate:"min=0"`
	Total   int                       `json:"total" validate:"required,min=1"`
	Answers []AnsweredQuestionPayload `json:"answers"`
}

type SubmitPracticeRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Domain string `json:"domain" validate:"required,oneof=aptitude reasoning cs dsa practice"`
	Topic  string `json:"topic" validate:"required"`
	Score  int    `json:"score" validate:"min=0"`
	Total  int    `json:"total" validate:"required,min=1"`
}

type SubmitAptitudeRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Topic  string `json:"topic" validate:"required"`
	Score  int    `json:"score" validate:"min=0"`
	Total  int    `json:"total" validate:"required,min=1"`
}

type QuizQuestionPayload struct {
	QuestionText string `json:"question_text"`
	Subtopic     string `json:"subtopic"`
	WasCorrect   bool   `json:"was_correct"`
}

type SubmitQuizRequest struct {
	UserID    string                `json:"user_id" validate:"required"`
	Topic     string                `json:"topic" validate:"required"`
	Questions []QuizQuestionPayload `json:"questions" validate:"required,min=1"`
}

type SubmitAttemptResponse struct {
	AttemptID   string                   `json:"attempt_id"`
	Kind        string                   `json:"kind"`
	Score       int                      `json:"score"`
	Total       int                      `json:"total"`
	Percent     float64                  `json:"percent"`
	PerSubtopic []analytics.SubtopicStat `json:"per_subtopic,omitempty"`
}

type AttemptLog struct {
	AttemptID string `json:"attempt_id"`
	Kind      string `json:"kind"`
	Domain    string `json:"domain"`
	Topic     string `json:"topic"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	CreatedAt string `json:"created_at"`
}
