package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/examind/examind-be/internal/delivery/http/entity"
	"github.com/examind/examind-be/internal/delivery/http/repository"
	internalEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptUsecase interface {
	SubmitExam(ctx context.Context, req entity.SubmitExamRequest) (*entity.SubmitAttemptResponse, error)
	SubmitPractice(ctx context.Context, req entity.SubmitPracticeRequest) (*entity.SubmitAttemptResponse, error)
	SubmitQuiz(ctx context.Context, req entity.SubmitQuizRequest) (*entity.SubmitAttemptResponse, error)
	SubmitAptitude(ctx context.Context, req entity.SubmitAptitudeRequest) (*entity.SubmitAttemptResponse, error)
	ListByUser(ctx context.Context, userID string) ([]entity.AttemptLog, error)
}

type AttemptConfig struct {
	DB         *gorm.DB
	Repository repository.AttemptRepository
}

type attemptUsecase struct {
	cfg AttemptConfig
}

func NewAttemptUsecase(cfg AttemptConfig) AttemptUsecase {
	return &attemptUsecase{cfg: cfg}
}

func (u *attemptUsecase) SubmitExam(_ context.Context, req entity.SubmitExamRequest) (*entity.SubmitAttemptResponse, error) {
	if req.Score > req.Total {
		return nil, fmt.Errorf("score %d exceeds total %d", req.Score, req.Total)
	}

	attempt := newAttempt(internalEntity.KindExam, req.UserID, req.Domain, req.Topic, req.Score, req.Total)
	if err := u.cfg.Repository.Create(u.cfg.DB, attempt); err != nil {
		return nil, fmt.Errorf("failed to save exam attempt: %w", err)
	}

	// Breakdown of the just-submitted answers by subtopic, returned so the
	// result page can show where the marks were lost.
	var perSubtopic []analytics.SubtopicStat
	if len(req.Answers) > 0 {
		answered := make([]analytics.AnsweredQuestion, 0, len(req.Answers))
		for _, a := range req.Answers {
			answered = append(answered, analytics.AnsweredQuestion{
				Text:          a.QuestionText,
				Subtopic:      a.Subtopic,
				SelectedIndex: indexOrMissing(a.SelectedIndex),
				CorrectIndex:  indexOrMissing(a.CorrectIndex),
			})
		}
		perSubtopic = analytics.AggregateSubtopics(answered, req.Topic)
	}

	resp := attemptResponse(attempt)
	resp.PerSubtopic = perSubtopic
	return resp, nil
}

func (u *attemptUsecase) SubmitPractice(_ context.Context, req entity.SubmitPracticeRequest) (*entity.SubmitAttemptResponse, error) {
	if req.Score > req.Total {
		return nil, fmt.Errorf("score %d exceeds total %d", req.Score, req.Total)
	}
	attempt := newAttempt(internalEntity.KindPractice, req.UserID, req.Domain, req.Topic, req.Score, req.Total)
	if err := u.cfg.Repository.Create(u.cfg.DB, attempt); err != nil {
		return nil, fmt.Errorf("failed to save practice attempt: %w", err)
	}
	return attemptResponse(attempt), nil
}

func (u *attemptUsecase) SubmitQuiz(_ context.Context, req entity.SubmitQuizRequest) (*entity.SubmitAttemptResponse, error) {
	score := 0
	for _, q := range req.Questions {
		if q.WasCorrect {
			score++
		}
	}

	attempt := newAttempt(internalEntity.KindQuiz, req.UserID, entity.DomainQuiz, req.Topic, score, len(req.Questions))
	if err := u.cfg.Repository.Create(u.cfg.DB, attempt); err != nil {
		return nil, fmt.Errorf("failed to save quiz attempt: %w", err)
	}

	answers := make([]internalEntity.QuizAnswer, 0, len(req.Questions))
	for _, q := range req.Questions {
		answers = append(answers, internalEntity.QuizAnswer{
			AttemptID:    attempt.AttemptID,
			QuestionText: q.QuestionText,
			Subtopic:     q.Subtopic,
			WasCorrect:   q.WasCorrect,
		})
	}
	if err := u.cfg.Repository.CreateQuizAnswers(u.cfg.DB, answers); err != nil {
		return nil, fmt.Errorf("failed to save quiz answers: %w", err)
	}

	return attemptResponse(attempt), nil
}

func (u *attemptUsecase) SubmitAptitude(_ context.Context, req entity.SubmitAptitudeRequest) (*entity.SubmitAttemptResponse, error) {
	if req.Score > req.Total {
		return nil, fmt.Errorf("score %d exceeds total %d", req.Score, req.Total)
	}
	attempt := newAttempt(internalEntity.KindAptitude, req.UserID, entity.DomainAptitude, req.Topic, req.Score, req.Total)
	if err := u.cfg.Repository.Create(u.cfg.DB, attempt); err != nil {
		return nil, fmt.Errorf("failed to save aptitude attempt: %w", err)
	}
	return attemptResponse(attempt), nil
}

func (u *attemptUsecase) ListByUser(_ context.Context, userID string) ([]entity.AttemptLog, error) {
	attempts, err := u.cfg.Repository.FindByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	logs := make([]entity.AttemptLog, 0, len(attempts))
	for _, a := range attempts {
		logs = append(logs, entity.AttemptLog{
			AttemptID: a.AttemptID,
			Kind:      a.Kind,
			Domain:    a.Domain,
			Topic:     a.Topic,
			Score:     a.Score,
			Total:     a.Total,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return logs, nil
}

func newAttempt(kind, userID, domain, topic string, score, total int) *internalEntity.Attempt {
	return &internalEntity.Attempt{
		AttemptID: uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Domain:    domain,
		Topic:     analytics.NormalizeTopic(topic),
		Score:     score,
		Total:     total,
	}
}

func attemptResponse(a *internalEntity.Attempt) *entity.SubmitAttemptResponse {
	total := a.Total
	if total <= 0 {
		total = 1
	}
	return &entity.SubmitAttemptResponse{
		AttemptID: a.AttemptID,
		Kind:      a.Kind,
		Score:     a.Score,
		Total:     a.Total,
		Percent:   math.Round(float64(a.Score) / float64(total) * 100),
	}
}

func indexOrMissing(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
