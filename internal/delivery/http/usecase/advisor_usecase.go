package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/examind/examind-be/internal/delivery/http/entity"
	"github.com/examind/examind-be/internal/delivery/http/repository"
	internalEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"github.com/examind/examind-be/internal/pkg/llm"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdvisorUsecase interface {
	GetReport(ctx context.Context, userID string) (*entity.UserReport, error)
	Chat(ctx context.Context, userID string, userMessage string) (*entity.ChatResponse, error)
	GetChatHistory(ctx context.Context, userID string) ([]entity.ChatHistoryItem, error)
}

type AdvisorConfig struct {
	DB         *gorm.DB
	LLM        *llm.Client
	Analysis   AnalysisUsecase
	Repository repository.AdvisorRepository
	Log        *logrus.Logger
}

type advisorUsecase struct {
	cfg AdvisorConfig
}

func NewAdvisorUsecase(cfg AdvisorConfig) AdvisorUsecase {
	return &advisorUsecase{cfg: cfg}
}

func (u *advisorUsecase) GetReport(ctx context.Context, userID string) (*entity.UserReport, error) {
	analysis, err := u.cfg.Analysis.GetUserAnalysis(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendation, generatedBy := u.recommendation(ctx, userID, analysis)

	// Cache the report so the chat endpoint has context without recomputing.
	if err := u.saveReportCache(userID, analysis, recommendation, generatedBy); err != nil && u.cfg.Log != nil {
		u.cfg.Log.WithError(err).WithField("user_id", userID).Warn("failed to cache advisor report")
	}

	return &entity.UserReport{
		UserID:         userID,
		Analysis:       *analysis,
		Recommendation: recommendation,
		GeneratedBy:    generatedBy,
	}, nil
}

type advisorRecommendationJSON struct {
	Recommendation string `json:"recommendation"`
}

// recommendation returns the study advice text and whether it came from the
// model or the deterministic fallback.
func (u *advisorUsecase) recommendation(ctx context.Context, userID string, analysis *analytics.Analysis) (string, string) {
	if u.cfg.LLM == nil {
		return fallbackRecommendation(analysis), "fallback"
	}

	prompt := fmt.Sprintf(`You are a study advisor for a placement-exam preparation platform.

Learner signals:
- Predicted next exam score: %.0f out of 100
- Pass probability: %.2f
- Weakest topics (ascending accuracy): %s

Task:
Write 2-3 short, concrete study recommendations for this learner. Name the
weak topics explicitly and suggest what kind of practice to do for each.
Keep it encouraging and under 120 words.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"recommendation":"..."}`,
		analysis.PredictedScore, analysis.PassProbability, weakTopicSummary(analysis.WeakTopics))

	text, err := u.cfg.LLM.GenerateText(ctx, prompt)
	if err != nil {
		if u.cfg.Log != nil {
			u.cfg.Log.WithError(err).WithField("user_id", userID).Warn("advisor recommendation fell back")
		}
		return fallbackRecommendation(analysis), "fallback"
	}

	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var parsed advisorRecommendationJSON
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil || parsed.Recommendation == "" {
		return fallbackRecommendation(analysis), "fallback"
	}

	return parsed.Recommendation, "llm"
}

func fallbackRecommendation(analysis *analytics.Analysis) string {
	if len(analysis.WeakTopics) == 0 {
		return "Keep a steady practice rhythm. Take a full mock exam this week to sharpen your score trend."
	}

	var b strings.Builder
	b.WriteString("Focus your next sessions on: ")
	limit := len(analysis.WeakTopics)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		wt := analysis.WeakTopics[i]
		fmt.Fprintf(&b, "%s (%d%% accuracy)", wt.Topic, wt.Accuracy)
	}
	b.WriteString(". Start each with a short drill, then retake a timed quiz on the same topic.")
	return b.String()
}

func weakTopicSummary(entries []analytics.WeakTopicEntry) string {
	if len(entries) == 0 {
		return "none recorded yet"
	}
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		if i == 5 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s/%s at %d%%", e.Domain, e.Topic, e.Accuracy))
	}
	return strings.Join(parts, "; ")
}

func (u *advisorUsecase) saveReportCache(userID string, analysis *analytics.Analysis, recommendation, generatedBy string) error {
	weakTopicsJSON, err := json.Marshal(analysis.WeakTopics)
	if err != nil {
		return err
	}

	report := &internalEntity.AnalysisReport{
		UserID:          userID,
		PredictedScore:  analysis.PredictedScore,
		PassProbability: analysis.PassProbability,
		WeakTopics:      string(weakTopicsJSON),
		Recommendation:  recommendation,
		GeneratedBy:     generatedBy,
	}
	return u.cfg.Repository.UpsertReport(u.cfg.DB, report)
}

func (u *advisorUsecase) Chat(ctx context.Context, userID string, userMessage string) (*entity.ChatResponse, error) {
	if u.cfg.LLM == nil {
		return nil, fmt.Errorf("advisor chat requires an LLM client")
	}

	// Use the cached report for context, generating one on first contact.
	report, err := u.cfg.Repository.FindReportByUserID(u.cfg.DB, userID)
	if err != nil || report == nil {
		if _, genErr := u.GetReport(ctx, userID); genErr != nil {
			return nil, fmt.Errorf("failed to build advisor context: %w", genErr)
		}
		report, err = u.cfg.Repository.FindReportByUserID(u.cfg.DB, userID)
		if err != nil || report == nil {
			return nil, fmt.Errorf("failed to load advisor context: %w", err)
		}
	}

	systemContext := fmt.Sprintf(`You are a study advisor helping a learner prepare for a placement exam.

Learner context:
- Predicted next exam score: %.0f out of 100
- Pass probability: %.2f
- Weak topics: %s
- Current recommendation: %s

Your role:
1. Answer questions about the learner's progress in plain language
2. Suggest concrete next steps tied to their weak topics
3. Never invent scores or topics that are not in the context
4. Stay encouraging and keep answers short`,
		report.PredictedScore, report.PassProbability, report.WeakTopics, report.Recommendation)

	history, err := u.cfg.Repository.FindMessagesByUserID(u.cfg.DB, userID, 10)
	if err != nil {
		history = []internalEntity.AdvisorMessage{}
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemContext,
		},
	}
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Message,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	botResponse, err := u.cfg.LLM.GenerateChatResponse(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advisor response: %w", err)
	}

	if err := u.cfg.Repository.CreateMessage(u.cfg.DB, &internalEntity.AdvisorMessage{
		UserID:  userID,
		Role:    "user",
		Message: userMessage,
	}); err != nil && u.cfg.Log != nil {
		u.cfg.Log.WithError(err).Warn("failed to save user message")
	}
	if err := u.cfg.Repository.CreateMessage(u.cfg.DB, &internalEntity.AdvisorMessage{
		UserID:  userID,
		Role:    "assistant",
		Message: botResponse,
	}); err != nil && u.cfg.Log != nil {
		u.cfg.Log.WithError(err).Warn("failed to save advisor message")
	}

	return &entity.ChatResponse{
		UserID:   userID,
		Response: botResponse,
	}, nil
}

func (u *advisorUsecase) GetChatHistory(_ context.Context, userID string) ([]entity.ChatHistoryItem, error) {
	messages, err := u.cfg.Repository.FindMessagesByUserID(u.cfg.DB, userID, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	history := make([]entity.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		history = append(history, entity.ChatHistoryItem{
			Role:      msg.Role,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return history, nil
}
