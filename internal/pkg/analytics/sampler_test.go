package analytics

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func poolOf(n int, difficulty string) []PoolQuestion {
	pool := make([]PoolQuestion, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, PoolQuestion{
			Text:       fmt.Sprintf("%s question number %d", difficulty, i),
			Options:    []string{"a", "b", "c", "d"},
			Answer:     "c",
			Difficulty: difficulty,
		})
	}
	return pool
}

func mixedPool(beginner, intermediate, advanced int) []PoolQuestion {
	pool := poolOf(beginner, DifficultyBeginner)
	pool = append(pool, poolOf(intermediate, DifficultyIntermediate)...)
	pool = append(pool, poolOf(advanced, DifficultyAdvanced)...)
	return pool
}

func TestClassifyDifficulty(t *testing.T) {
	testCases := []struct {
		name string
		q    PoolQuestion
		want string
	}{
		{"explicit tag wins", PoolQuestion{Text: "short", Difficulty: DifficultyAdvanced}, DifficultyAdvanced},
		{"dp text is advanced", PoolQuestion{Text: "What is the time complexity of this DP solution?"}, DifficultyAdvanced},
		{"graph keyword", PoolQuestion{Text: "Given a weighted graph, find the shortest path between two of its vertices."}, DifficultyAdvanced},
		{"long text is advanced", PoolQuestion{Text: "Consider a scenario where a warehouse receives shipments on alternating days and each shipment must be logged, verified and stored following a strict intake procedure before the next arrives."}, DifficultyAdvanced},
		{"true/false is beginner", PoolQuestion{Text: "True or false: a byte holds eight bits and nothing more than that amount."}, DifficultyBeginner},
		{"short text is beginner", PoolQuestion{Text: "What does CPU stand for?"}, DifficultyBeginner},
		{"neutral mid-length is intermediate", PoolQuestion{Text: "Evaluate the output of the following code segment when the input collection contains ten numbers."}, DifficultyIntermediate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyDifficulty(tc.q); got != tc.want {
				t.Errorf("ClassifyDifficulty(%q) = %q, want %q", tc.q.Text, got, tc.want)
			}
		})
	}
}

func TestTargetMix_SumsToOne(t *testing.T) {
	for mastery := 0.0; mastery <= 100; mastery += 10 {
		for predicted := 0.0; predicted <= 100; predicted += 10 {
			mix := TargetMix(mastery, predicted)
			sum := mix.Beginner + mix.Intermediate + mix.Advanced
			if !almostEqual(sum, 1.0) {
				t.Fatalf("mix(%v, %v) sums to %v", mastery, predicted, sum)
			}
		}
	}
}

func TestTargetMix_Bands(t *testing.T) {
	// mastery 45 sits in the low band, predicted 75 in the high band
	mix := TargetMix(45, 75)
	want := Mix{Beginner: 0.45, Intermediate: 0.325, Advanced: 0.225}
	if !almostEqual(mix.Beginner, want.Beginner) ||
		!almostEqual(mix.Intermediate, want.Intermediate) ||
		!almostEqual(mix.Advanced, want.Advanced) {
		t.Errorf("TargetMix(45, 75) = %+v, want %+v", mix, want)
	}
}

func TestPlan_RemainderDistribution(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	// floors for limit 10 at mix {0.45, 0.325, 0.225} are {4, 3, 2}; the one
	// leftover unit goes to the bucket with the most remaining supply
	plan := s.Plan(mixedPool(5, 10, 2), 10, 45, 75)
	if got := plan.TargetCounts; got != (BucketCounts{Beginner: 4, Intermediate: 4, Advanced: 2}) {
		t.Errorf("targets = %+v, want remainder on intermediate", got)
	}

	// equal remaining supply everywhere: tie resolves to beginner
	plan = s.Plan(mixedPool(5, 4, 3), 10, 45, 75)
	if got := plan.TargetCounts; got != (BucketCounts{Beginner: 5, Intermediate: 3, Advanced: 2}) {
		t.Errorf("tie targets = %+v, want remainder on beginner", got)
	}
}

func TestPlan_TargetsSumToLimit(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))
	pool := mixedPool(20, 20, 20)
	for _, limit := range []int{1, 3, 7, 10, 25, 60} {
		for mastery := 0.0; mastery <= 100; mastery += 25 {
			plan := s.Plan(pool, limit, mastery, 55)
			sum := plan.TargetCounts.Beginner + plan.TargetCounts.Intermediate + plan.TargetCounts.Advanced
			if sum != limit {
				t.Fatalf("limit %d mastery %v: targets sum to %d", limit, mastery, sum)
			}
		}
	}
}

func TestSample_CountAndUniqueness(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(7)))
	pool := mixedPool(10, 10, 10)

	selected := s.Sample(pool, 12, 45, 75)
	if len(selected) != 12 {
		t.Fatalf("got %d questions, want 12", len(selected))
	}
	seen := map[string]bool{}
	for _, q := range selected {
		if seen[q.Text] {
			t.Errorf("duplicate question %q", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestSample_TopUpOnSparseBuckets(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(3)))
	// advanced-heavy demand (mastery and predicted both high), but the pool
	// holds almost no advanced questions
	pool := mixedPool(12, 2, 1)

	selected := s.Sample(pool, 10, 90, 90)
	if len(selected) != 10 {
		t.Errorf("got %d questions, want top-up to 10", len(selected))
	}
}

func TestSample_ShortDeliveryOnSmallPool(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(3)))
	selected := s.Sample(mixedPool(2, 1, 0), 10, 60, 60)
	if len(selected) != 3 {
		t.Errorf("got %d questions, want all 3 available", len(selected))
	}
}

func TestSample_CorrectIndexResolution(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(5)))
	pool := []PoolQuestion{
		{Text: "q1", Options: []string{"x", "y", "z"}, Answer: "y"},
		{Text: "q2", Options: []string{"x", "y", "z"}, Answer: "missing"},
	}

	selected := s.Sample(pool, 2, 60, 60)
	byText := map[string]SelectedQuestion{}
	for _, q := range selected {
		byText[q.Text] = q
	}
	if byText["q1"].CorrectIndex != 1 {
		t.Errorf("q1 correctIndex = %d, want 1", byText["q1"].CorrectIndex)
	}
	if byText["q2"].CorrectIndex != 0 {
		t.Errorf("q2 correctIndex = %d, want fallback 0", byText["q2"].CorrectIndex)
	}
}

func TestPlan_ConsumesNoRandomness(t *testing.T) {
	pool := mixedPool(15, 15, 15)

	direct := NewSampler(rand.New(rand.NewSource(11))).Sample(pool, 10, 45, 75)

	previewed := NewSampler(rand.New(rand.NewSource(11)))
	for i := 0; i < 3; i++ {
		previewed.Plan(pool, 10, 45, 75)
	}
	after := previewed.Sample(pool, 10, 45, 75)

	if !reflect.DeepEqual(direct, after) {
		t.Error("preview calls disturbed the sampled selection")
	}
}

func TestSample_Deterministic(t *testing.T) {
	pool := mixedPool(8, 8, 8)
	a := NewSampler(rand.New(rand.NewSource(42))).Sample(pool, 9, 45, 75)
	b := NewSampler(rand.New(rand.NewSource(42))).Sample(pool, 9, 45, 75)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different samples")
	}
}
