package usecase

import (
	"context"
	"fmt"

	"github.com/examind/examind-be/internal/delivery/http/repository"
	internalEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"gorm.io/gorm"
)

type AnalysisUsecase interface {
	GetUserAnalysis(ctx context.Context, userID string) (*analytics.Analysis, error)
}

type AnalysisConfig struct {
	DB         *gorm.DB
	Repository repository.AttemptRepository
}

type analysisUsecase struct {
	cfg AnalysisConfig
}

func NewAnalysisUsecase(cfg AnalysisConfig) AnalysisUsecase {
	return &analysisUsecase{cfg: cfg}
}

func (u *analysisUsecase) GetUserAnalysis(_ context.Context, userID string) (*analytics.Analysis, error) {
	attempts, err := u.cfg.Repository.FindByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	timeline := analytics.BuildTimeline(attemptRecords(attempts))
	trend := analytics.LinearRegression(timeline)
	predicted := analytics.PredictedNextScore(timeline)

	currentScore := 50.0
	if len(timeline) > 0 {
		currentScore = timeline[len(timeline)-1].Score
	}
	passProbability := analytics.PassProbability(currentScore, trend.Slope)

	weakTopics, err := collectWeakTopics(u.cfg.DB, u.cfg.Repository, attempts)
	if err != nil {
		return nil, err
	}

	analysis := analytics.BuildAnalysis(timeline, weakTopics, predicted, passProbability, nil)
	return &analysis, nil
}

// collectWeakTopics folds practice, quiz, and aptitude results into the ranked
// weak-topic list. Exam attempts are summative and stay out of it.
func collectWeakTopics(db *gorm.DB, repo repository.AttemptRepository, attempts []internalEntity.Attempt) ([]analytics.WeakTopicEntry, error) {
	var (
		practice       []analytics.TopicResult
		aptitude       []analytics.TopicResult
		quizAttemptIDs []string
		quizByID       = map[string]internalEntity.Attempt{}
	)
	for _, a := range attempts {
		switch a.Kind {
		case internalEntity.KindPractice:
			practice = append(practice, analytics.TopicResult{
				Domain:  a.Domain,
				Topic:   a.Topic,
				Correct: a.Score,
				Total:   a.Total,
			})
		case internalEntity.KindAptitude:
			aptitude = append(aptitude, analytics.TopicResult{
				Domain:  a.Domain,
				Topic:   a.Topic,
				Correct: a.Score,
				Total:   a.Total,
			})
		case internalEntity.KindQuiz:
			quizAttemptIDs = append(quizAttemptIDs, a.AttemptID)
			quizByID[a.AttemptID] = a
		}
	}

	var quiz []analytics.QuizResult
	if len(quizAttemptIDs) > 0 {
		answers, err := repo.FindQuizAnswersByAttemptIDs(db, quizAttemptIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load quiz answers: %w", err)
		}
		grouped := map[string][]bool{}
		for _, ans := range answers {
			grouped[ans.AttemptID] = append(grouped[ans.AttemptID], ans.WasCorrect)
		}
		for _, id := range quizAttemptIDs {
			quiz = append(quiz, analytics.QuizResult{
				Topic:   quizByID[id].Topic,
				Answers: grouped[id],
			})
		}
	}

	return analytics.AggregateWeakTopics(practice, quiz, aptitude), nil
}

func attemptRecords(attempts []internalEntity.Attempt) []analytics.AttemptRecord {
	records := make([]analytics.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		records = append(records, analytics.AttemptRecord{
			Domain:    a.Domain,
			Topic:     a.Topic,
			Score:     float64(a.Score),
			Total:     a.Total,
			CreatedAt: a.CreatedAt,
		})
	}
	return records
}
