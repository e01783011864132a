package analytics

import (
	"math"
	"math/rand"
	"regexp"
	"time"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// PoolQuestion is one candidate question from the bank. Difficulty and
// Subtopic are optional tags; missing difficulty is inferred from the text.
type PoolQuestion struct {
	Text        string
	Options     []string
	Answer      string
	Explanation string
	Subtopic    string
	Difficulty  string
}

// SelectedQuestion is the delivery shape of a sampled question.
type SelectedQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Mix is the target share of each difficulty bucket; the fractions sum to 1.
type Mix struct {
	Beginner     float64 `json:"beginner"`
	Intermediate float64 `json:"intermediate"`
	Advanced     float64 `json:"advanced"`
}

// BucketCounts carries per-difficulty integer counts.
type BucketCounts struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

// SamplePlan is the deterministic part of a sampling run: what the sampler
// would aim for, before any randomness is consumed. Served to the pre-start
// screen so the student sees the expected difficulty spread.
type SamplePlan struct {
	Mastery         float64      `json:"mastery"`
	Predicted       float64      `json:"predicted"`
	Mix             Mix          `json:"mix"`
	TargetCounts    BucketCounts `json:"targetCounts"`
	AvailableCounts BucketCounts `json:"availableCounts"`
}

var (
	advancedHints = regexp.MustCompile(`(?i)dynamic programming|\bdp\b|graph|tree|trie|heap|complexity|big-?o|permutation|combination|probability`)
	beginnerHints = regexp.MustCompile(`(?i)basic|fundamental|intro|beginner|true/false|true or false`)
)

// ClassifyDifficulty buckets a question by its explicit difficulty tag when
// present, otherwise by text heuristics: advanced-topic keywords or long
// prompts read as advanced, introductory keywords or short prompts as
// beginner, everything else as intermediate.
func ClassifyDifficulty(q PoolQuestion) string {
	switch q.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return q.Difficulty
	}
	if advancedHints.MatchString(q.Text) || len(q.Text) > 160 {
		return DifficultyAdvanced
	}
	if beginnerHints.MatchString(q.Text) || len(q.Text) < 80 {
		return DifficultyBeginner
	}
	return DifficultyIntermediate
}

func mixForScore(score float64) Mix {
	switch {
	case score < 50:
		return Mix{Beginner: 0.70, Intermediate: 0.25, Advanced: 0.05}
	case score <= 70:
		return Mix{Beginner: 0.30, Intermediate: 0.50, Advanced: 0.20}
	default:
		return Mix{Beginner: 0.20, Intermediate: 0.40, Advanced: 0.40}
	}
}

// TargetMix blends the mastery-based and prediction-based difficulty mixes
// element-wise.
func TargetMix(mastery, predicted float64) Mix {
	m := mixForScore(mastery)
	p := mixForScore(predicted)
	return Mix{
		Beginner:     (m.Beginner + p.Beginner) / 2,
		Intermediate: (m.Intermediate + p.Intermediate) / 2,
		Advanced:     (m.Advanced + p.Advanced) / 2,
	}
}

// Sampler selects exam questions biased toward the student's demonstrated
// level. The random source is injected so tests can fix the permutation;
// passing nil uses a time-seeded source.
type Sampler struct {
	rnd *rand.Rand
}

func NewSampler(rnd *rand.Rand) *Sampler {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rnd: rnd}
}

// Plan computes the difficulty mix, target counts and pool availability for
// one sampling run. It consumes no randomness, so the pre-start preview can
// call it any number of times without disturbing the eventual sample.
func (s *Sampler) Plan(pool []PoolQuestion, limit int, mastery, predicted float64) SamplePlan {
	available := countBuckets(pool)
	mix := TargetMix(mastery, predicted)
	return SamplePlan{
		Mastery:         mastery,
		Predicted:       predicted,
		Mix:             mix,
		TargetCounts:    targetCounts(limit, mix, available),
		AvailableCounts: available,
	}
}

// Sample draws exactly limit questions from the pool following the plan's
// target counts, topping up from the remaining pool when a bucket runs short.
// A pool smaller than limit yields a short result, not an error.
func (s *Sampler) Sample(pool []PoolQuestion, limit int, mastery, predicted float64) []SelectedQuestion {
	plan := s.Plan(pool, limit, mastery, predicted)

	buckets := map[string][]PoolQuestion{}
	for _, q := range pool {
		d := ClassifyDifficulty(q)
		buckets[d] = append(buckets[d], q)
	}

	targets := map[string]int{
		DifficultyBeginner:     plan.TargetCounts.Beginner,
		DifficultyIntermediate: plan.TargetCounts.Intermediate,
		DifficultyAdvanced:     plan.TargetCounts.Advanced,
	}

	seen := map[string]bool{}
	var picked []PoolQuestion
	for _, d := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		bucket := buckets[d]
		s.rnd.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		take := targets[d]
		if take > len(bucket) {
			take = len(bucket)
		}
		for _, q := range bucket[:take] {
			if !seen[q.Text] {
				seen[q.Text] = true
				picked = append(picked, q)
			}
		}
	}

	if len(picked) < limit {
		rest := make([]PoolQuestion, 0, len(pool))
		for _, q := range pool {
			if !seen[q.Text] {
				rest = append(rest, q)
			}
		}
		s.rnd.Shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})
		for _, q := range rest {
			if len(picked) >= limit {
				break
			}
			if !seen[q.Text] {
				seen[q.Text] = true
				picked = append(picked, q)
			}
		}
	}

	out := make([]SelectedQuestion, 0, len(picked))
	for _, q := range picked {
		out = append(out, SelectedQuestion{
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: answerIndex(q.Options, q.Answer),
			Explanation:  q.Explanation,
		})
	}
	return out
}

func countBuckets(pool []PoolQuestion) BucketCounts {
	var c BucketCounts
	for _, q := range pool {
		switch ClassifyDifficulty(q) {
		case DifficultyBeginner:
			c.Beginner++
		case DifficultyIntermediate:
			c.Intermediate++
		case DifficultyAdvanced:
			c.Advanced++
		}
	}
	return c
}

// targetCounts floors limit*mix per bucket, then hands the rounding remainder
// out one unit at a time to the bucket with the most remaining supply
// (available minus current target), recomputed after every increment. Ties
// resolve in bucket order beginner, intermediate, advanced.
func targetCounts(limit int, mix Mix, available BucketCounts) BucketCounts {
	target := [3]int{
		int(math.Floor(float64(limit) * mix.Beginner)),
		int(math.Floor(float64(limit) * mix.Intermediate)),
		int(math.Floor(float64(limit) * mix.Advanced)),
	}
	avail := [3]int{available.Beginner, available.Intermediate, available.Advanced}

	remaining := limit - (target[0] + target[1] + target[2])
	for ; remaining > 0; remaining-- {
		best := 0
		for i := 1; i < 3; i++ {
			if avail[i]-target[i] > avail[best]-target[best] {
				best = i
			}
		}
		target[best]++
	}

	return BucketCounts{Beginner: target[0], Intermediate: target[1], Advanced: target[2]}
}

func answerIndex(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	// answer string missing from its own options; deliver the first option
	// rather than failing the whole assignment
	return 0
}
