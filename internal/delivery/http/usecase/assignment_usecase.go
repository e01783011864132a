package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/examind/examind-be/internal/delivery/http/entity"
	"github.com/examind/examind-be/internal/delivery/http/repository"
	internalEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"github.com/examind/examind-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmptyQuestionPool = errors.New("no questions available")

type AssignmentUsecase interface {
	Preview(ctx context.Context, userID, domain, topic string, limit int) (*entity.AssignmentPreview, error)
	Start(ctx context.Context, req entity.StartAssignmentRequest) (*entity.AssignmentQuestions, error)
}

type AssignmentConfig struct {
	DB        *gorm.DB
	Attempts  repository.AttemptRepository
	Questions repository.QuestionRepository
	Log       *logrus.Logger
	Sampler   *analytics.Sampler
}

type assignmentUsecase struct {
	cfg AssignmentConfig
}

func NewAssignmentUsecase(cfg AssignmentConfig) AssignmentUsecase {
	if cfg.Sampler == nil {
		cfg.Sampler = analytics.NewSampler(nil)
	}
	return &assignmentUsecase{cfg: cfg}
}

func (u *assignmentUsecase) Preview(_ context.Context, userID, domain, topic string, limit int) (*entity.AssignmentPreview, error) {
	_, plan, err := u.plan(userID, domain, topic, limit)
	if err != nil {
		return nil, err
	}
	return &entity.AssignmentPreview{
		Domain:          domain,
		Topic:           topic,
		Limit:           limit,
		Mastery:         plan.Mastery,
		Predicted:       plan.Predicted,
		Mix:             plan.Mix,
		TargetCounts:    plan.TargetCounts,
		AvailableCounts: plan.AvailableCounts,
	}, nil
}

func (u *assignmentUsecase) Start(_ context.Context, req entity.StartAssignmentRequest) (*entity.AssignmentQuestions, error) {
	pool, plan, err := u.plan(req.UserID, req.Domain, req.Topic, req.Limit)
	if err != nil {
		return nil, err
	}

	questions := u.cfg.Sampler.Sample(pool, req.Limit, plan.Mastery, plan.Predicted)
	if u.cfg.Log != nil {
		u.cfg.Log.WithFields(logrus.Fields{
			"user_id":   req.UserID,
			"domain":    req.Domain,
			"topic":     req.Topic,
			"requested": req.Limit,
			"delivered": len(questions),
		}).Info("assignment started")
	}

	return &entity.AssignmentQuestions{
		Domain:    req.Domain,
		Topic:     req.Topic,
		Count:     len(questions),
		Questions: questions,
	}, nil
}

// plan loads the candidate pool and the learner signals behind the difficulty
// mix. The pool comes back alongside the plan so Start can sample from it
// without a second query.
func (u *assignmentUsecase) plan(userID, domain, topic string, limit int) ([]analytics.PoolQuestion, analytics.SamplePlan, error) {
	var (
		rows []internalEntity.BankQuestion
		err  error
	)
	// Topics are stored normalized, so the client's spelling has to be
	// normalized before the lookup.
	normalizedTopic := analytics.NormalizeTopic(topic)
	if normalizedTopic == "" || normalizedTopic == entity.TopicRandom {
		rows, err = u.cfg.Questions.FindByDomain(u.cfg.DB, domain)
	} else {
		rows, err = u.cfg.Questions.FindByDomainAndTopic(u.cfg.DB, domain, normalizedTopic)
	}
	if err != nil {
		return nil, analytics.SamplePlan{}, fmt.Errorf("failed to load question pool: %w", err)
	}
	if len(rows) == 0 {
		return nil, analytics.SamplePlan{}, ErrEmptyQuestionPool
	}

	pool := make([]analytics.PoolQuestion, 0, len(rows))
	for _, row := range rows {
		q, err := mapper.ConvertToPoolQuestion(row)
		if err != nil {
			if u.cfg.Log != nil {
				u.cfg.Log.WithError(err).WithField("question_id", row.ID).Warn("skipping malformed bank question")
			}
			continue
		}
		pool = append(pool, q)
	}
	if len(pool) == 0 {
		return nil, analytics.SamplePlan{}, ErrEmptyQuestionPool
	}

	mastery, err := u.mastery(userID, domain, topic)
	if err != nil {
		return nil, analytics.SamplePlan{}, err
	}
	predicted, err := u.predicted(userID)
	if err != nil {
		return nil, analytics.SamplePlan{}, err
	}

	return pool, u.cfg.Sampler.Plan(pool, limit, mastery, predicted), nil
}

func (u *assignmentUsecase) mastery(userID, domain, topic string) (float64, error) {
	attempts, err := u.cfg.Attempts.FindByUserID(u.cfg.DB, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load attempts: %w", err)
	}
	entries, err := collectWeakTopics(u.cfg.DB, u.cfg.Attempts, attempts)
	if err != nil {
		return 0, err
	}
	return analytics.MasteryFor(entries, domain, topic), nil
}

// predicted extrapolates from the exam timeline only. Practice runs are noisy
// and would drag the forecast toward drill scores.
func (u *assignmentUsecase) predicted(userID string) (float64, error) {
	exams, err := u.cfg.Attempts.FindByUserIDAndKind(u.cfg.DB, userID, internalEntity.KindExam)
	if err != nil {
		return 0, fmt.Errorf("failed to load exam attempts: %w", err)
	}
	timeline := analytics.BuildTimeline(attemptRecords(exams))
	return analytics.PredictedNextScore(timeline), nil
}
