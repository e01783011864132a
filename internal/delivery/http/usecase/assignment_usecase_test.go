package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/examind/examind-be/internal/delivery/http/entity"
	internalEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"gorm.io/gorm"
)

type fakeQuestionRepository struct {
	rows            []internalEntity.BankQuestion
	domainOnlyCalls int
}

func (f *fakeQuestionRepository) Create(_ *gorm.DB, question *internalEntity.BankQuestion) error {
	f.rows = append(f.rows, *question)
	return nil
}

func (f *fakeQuestionRepository) FindByDomainAndTopic(_ *gorm.DB, domain, topic string) ([]internalEntity.BankQuestion, error) {
	var out []internalEntity.BankQuestion
	for _, r := range f.rows {
		if r.Domain == domain && r.Topic == topic {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepository) FindByDomain(_ *gorm.DB, domain string) ([]internalEntity.BankQuestion, error) {
	f.domainOnlyCalls++
	var out []internalEntity.BankQuestion
	for _, r := range f.rows {
		if r.Domain == domain {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepository) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.rows)), nil
}

func bankRows(domain, topic string, perBucket int) []internalEntity.BankQuestion {
	var rows []internalEntity.BankQuestion
	for _, difficulty := range []string{analytics.DifficultyBeginner, analytics.DifficultyIntermediate, analytics.DifficultyAdvanced} {
		for i := 0; i < perBucket; i++ {
			rows = append(rows, internalEntity.BankQuestion{
				Domain:     domain,
				Topic:      topic,
				Text:       fmt.Sprintf("%s %s question %d", topic, difficulty, i),
				Options:    `["A","B","C","D"]`,
				Answer:     "B",
				Difficulty: difficulty,
			})
		}
	}
	return rows
}

func newAssignmentUsecaseForTest(questions *fakeQuestionRepository, seed int64) AssignmentUsecase {
	return NewAssignmentUsecase(AssignmentConfig{
		Attempts:  &fakeAttemptRepository{},
		Questions: questions,
		Sampler:   analytics.NewSampler(rand.New(rand.NewSource(seed))),
	})
}

func TestPreviewDefaultsWithoutHistory(t *testing.T) {
	questions := &fakeQuestionRepository{rows: bankRows("dsa", "arrays", 4)}
	uc := newAssignmentUsecaseForTest(questions, 1)

	preview, err := uc.Preview(context.Background(), "u1", "dsa", "arrays", 10)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if preview.Mastery != 60 {
		t.Errorf("Mastery = %v, want the 60 default", preview.Mastery)
	}
	if preview.Predicted != 50 {
		t.Errorf("Predicted = %v, want the 50 default", preview.Predicted)
	}
	want := analytics.Mix{Beginner: 0.30, Intermediate: 0.50, Advanced: 0.20}
	if preview.Mix != want {
		t.Errorf("Mix = %+v, want %+v", preview.Mix, want)
	}
	if preview.AvailableCounts != (analytics.BucketCounts{Beginner: 4, Intermediate: 4, Advanced: 4}) {
		t.Errorf("AvailableCounts = %+v", preview.AvailableCounts)
	}
	if got := preview.TargetCounts; got.Beginner+got.Intermediate+got.Advanced != 10 {
		t.Errorf("TargetCounts %+v do not sum to the limit", got)
	}
}

func TestStartDeliversUniqueQuestions(t *testing.T) {
	questions := &fakeQuestionRepository{rows: bankRows("dsa", "arrays", 4)}
	uc := newAssignmentUsecaseForTest(questions, 7)

	result, err := uc.Start(context.Background(), entity.StartAssignmentRequest{
		UserID: "u1",
		Domain: "dsa",
		Topic:  "arrays",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if result.Count != 10 || len(result.Questions) != 10 {
		t.Fatalf("delivered %d questions, want 10", len(result.Questions))
	}
	seen := map[string]bool{}
	for _, q := range result.Questions {
		if seen[q.Text] {
			t.Errorf("duplicate question %q", q.Text)
		}
		seen[q.Text] = true
		if q.CorrectIndex != 1 {
			t.Errorf("CorrectIndex = %d for %q, want 1", q.CorrectIndex, q.Text)
		}
	}
}

func TestPreviewNormalizesClientTopic(t *testing.T) {
	// The bank stores topics lowercase with spaces stripped; the client may
	// spell them the way attempts were submitted.
	questions := &fakeQuestionRepository{rows: bankRows("dsa", "dynamicprogramming", 4)}
	uc := newAssignmentUsecaseForTest(questions, 5)

	preview, err := uc.Preview(context.Background(), "u1", "dsa", "Dynamic Programming", 10)
	if err != nil {
		t.Fatalf("Preview with display-form topic: %v", err)
	}
	if got := preview.AvailableCounts; got.Beginner+got.Intermediate+got.Advanced != 12 {
		t.Errorf("AvailableCounts = %+v, want the full 12-question pool", got)
	}

	result, err := uc.Start(context.Background(), entity.StartAssignmentRequest{
		UserID: "u1",
		Domain: "dsa",
		Topic:  "Dynamic Programming",
		Limit:  6,
	})
	if err != nil {
		t.Fatalf("Start with display-form topic: %v", err)
	}
	if result.Count != 6 {
		t.Errorf("delivered %d questions, want 6", result.Count)
	}
}

func TestStartRandomTopicQueriesWholeDomain(t *testing.T) {
	questions := &fakeQuestionRepository{rows: bankRows("cs", "os", 2)}
	uc := newAssignmentUsecaseForTest(questions, 3)

	result, err := uc.Start(context.Background(), entity.StartAssignmentRequest{
		UserID: "u1",
		Domain: "cs",
		Topic:  entity.TopicRandom,
		Limit:  4,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if questions.domainOnlyCalls == 0 {
		t.Error("random topic should query the whole domain")
	}
	if result.Count != 4 {
		t.Errorf("delivered %d questions, want 4", result.Count)
	}
}

func TestStartEmptyPool(t *testing.T) {
	uc := newAssignmentUsecaseForTest(&fakeQuestionRepository{}, 1)

	_, err := uc.Start(context.Background(), entity.StartAssignmentRequest{
		UserID: "u1",
		Domain: "dsa",
		Topic:  "arrays",
		Limit:  10,
	})
	if !errors.Is(err, ErrEmptyQuestionPool) {
		t.Fatalf("err = %v, want ErrEmptyQuestionPool", err)
	}
}
