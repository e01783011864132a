package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/examind/examind-be/internal/entity"
	"gorm.io/gorm"
)

type fakeAttemptRepository struct {
	attempts    []entity.Attempt
	quizAnswers []entity.QuizAnswer
}

func (f *fakeAttemptRepository) Create(_ *gorm.DB, attempt *entity.Attempt) error {
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptRepository) CreateQuizAnswers(_ *gorm.DB, answers []entity.QuizAnswer) error {
	f.quizAnswers = append(f.quizAnswers, answers...)
	return nil
}

func (f *fakeAttemptRepository) FindByUserID(_ *gorm.DB, userID string) ([]entity.Attempt, error) {
	var out []entity.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepository) FindByUserIDAndKind(_ *gorm.DB, userID, kind string) ([]entity.Attempt, error) {
	var out []entity.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID && a.Kind == kind {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepository) FindQuizAnswersByAttemptIDs(_ *gorm.DB, attemptIDs []string) ([]entity.QuizAnswer, error) {
	want := map[string]bool{}
	for _, id := range attemptIDs {
		want[id] = true
	}
	var out []entity.QuizAnswer
	for _, ans := range f.quizAnswers {
		if want[ans.AttemptID] {
			out = append(out, ans)
		}
	}
	return out, nil
}

func at(day int) time.Time {
	return time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
}

func TestGetUserAnalysisPredictsFromExamTrend(t *testing.T) {
	repo := &fakeAttemptRepository{
		attempts: []entity.Attempt{
			{AttemptID: "e1", UserID: "u1", Kind: entity.KindExam, Domain: "dsa", Topic: "arrays", Score: 40, Total: 100, CreatedAt: at(1)},
			{AttemptID: "e2", UserID: "u1", Kind: entity.KindExam, Domain: "dsa", Topic: "arrays", Score: 50, Total: 100, CreatedAt: at(2)},
			{AttemptID: "e3", UserID: "u1", Kind: entity.KindExam, Domain: "dsa", Topic: "arrays", Score: 60, Total: 100, CreatedAt: at(3)},
		},
	}
	uc := NewAnalysisUsecase(AnalysisConfig{Repository: repo})

	analysis, err := uc.GetUserAnalysis(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserAnalysis: %v", err)
	}

	if analysis.PredictedScore != 70 {
		t.Errorf("PredictedScore = %v, want 70", analysis.PredictedScore)
	}
	// Scores rising 10 points per attempt from a passing position.
	if analysis.PassProbability < 0.99 || analysis.PassProbability > 1 {
		t.Errorf("PassProbability = %v, want near 1", analysis.PassProbability)
	}
	if len(analysis.WeakTopics) != 0 {
		t.Errorf("WeakTopics = %v, want none for exam-only history", analysis.WeakTopics)
	}
	if len(analysis.RadarData) != 3 {
		t.Fatalf("RadarData has %d entries, want 3", len(analysis.RadarData))
	}
	if analysis.RadarData[0].Value != 50 {
		t.Errorf("recent average = %v, want 50", analysis.RadarData[0].Value)
	}
}

func TestGetUserAnalysisWeakTopicsExcludeExams(t *testing.T) {
	repo := &fakeAttemptRepository{
		attempts: []entity.Attempt{
			{AttemptID: "e1", UserID: "u1", Kind: entity.KindExam, Domain: "dsa", Topic: "graphs", Score: 0, Total: 10, CreatedAt: at(1)},
			{AttemptID: "p1", UserID: "u1", Kind: entity.KindPractice, Domain: "dsa", Topic: "graphs", Score: 1, Total: 5, CreatedAt: at(2)},
			{AttemptID: "a1", UserID: "u1", Kind: entity.KindAptitude, Domain: "aptitude", Topic: "quant", Score: 4, Total: 5, CreatedAt: at(3)},
			{AttemptID: "q1", UserID: "u1", Kind: entity.KindQuiz, Domain: "quiz", Topic: "mixed", Score: 1, Total: 2, CreatedAt: at(4)},
		},
		quizAnswers: []entity.QuizAnswer{
			{AttemptID: "q1", QuestionText: "first", WasCorrect: true},
			{AttemptID: "q1", QuestionText: "second", WasCorrect: false},
		},
	}
	uc := NewAnalysisUsecase(AnalysisConfig{Repository: repo})

	analysis, err := uc.GetUserAnalysis(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserAnalysis: %v", err)
	}

	if len(analysis.WeakTopics) != 3 {
		t.Fatalf("got %d weak topics, want 3: %v", len(analysis.WeakTopics), analysis.WeakTopics)
	}

	weakest := analysis.WeakTopics[0]
	if weakest.Domain != "dsa" || weakest.Topic != "graphs" {
		t.Errorf("weakest topic = %s:%s, want dsa:graphs", weakest.Domain, weakest.Topic)
	}
	// The 0/10 exam would drag graphs to 7% if it leaked into the aggregation.
	if weakest.Accuracy != 20 || weakest.Count != 5 {
		t.Errorf("weakest = %d%% over %d, want 20%% over 5", weakest.Accuracy, weakest.Count)
	}

	quiz := analysis.WeakTopics[1]
	if quiz.Domain != "quiz" || quiz.Topic != "mixed" || quiz.Accuracy != 50 || quiz.Count != 2 {
		t.Errorf("quiz entry = %+v, want quiz:mixed at 50%% over 2", quiz)
	}

	apt := analysis.WeakTopics[2]
	if apt.Domain != "aptitude" || apt.Topic != "quant" || apt.Accuracy != 80 {
		t.Errorf("aptitude entry = %+v, want aptitude:quant at 80%%", apt)
	}
}

func TestGetUserAnalysisEmptyHistoryDefaults(t *testing.T) {
	uc := NewAnalysisUsecase(AnalysisConfig{Repository: &fakeAttemptRepository{}})

	analysis, err := uc.GetUserAnalysis(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUserAnalysis: %v", err)
	}

	if analysis.PredictedScore != 50 {
		t.Errorf("PredictedScore = %v, want the 50 default", analysis.PredictedScore)
	}
	if analysis.PassProbability != 0.5 {
		t.Errorf("PassProbability = %v, want 0.5 for no history", analysis.PassProbability)
	}
}
