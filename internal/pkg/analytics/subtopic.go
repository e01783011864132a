package analytics

import (
	"math"
	"regexp"
)

// AnsweredQuestion is one question of a just-submitted attempt together with
// the student's selection. Index -1 marks a missing value: an unanswered
// question or an unknown answer key still counts toward the subtopic total,
// never as correct.
type AnsweredQuestion struct {
	Text          string
	Subtopic      string
	SelectedIndex int
	CorrectIndex  int
}

// SubtopicStat is the per-subtopic correctness of a single attempt.
type SubtopicStat struct {
	Subtopic string `json:"subtopic"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Accuracy int    `json:"accuracy"`
}

// Ordered: the first matching pattern wins, so the more specific checks come
// before the generic ones ("dynamic programming" before "array").
var subtopicPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)ratio|proportion`), "Ratios"},
	{regexp.MustCompile(`(?i)percent|%`), "Percentages"},
	{regexp.MustCompile(`(?i)time\s*&\s*work|time and work|work rate`), "Time & Work"},
	{regexp.MustCompile(`(?i)permutation|arrangement`), "Permutations"},
	{regexp.MustCompile(`(?i)combination|\bchoos`), "Combinations"},
	{regexp.MustCompile(`(?i)probability|chance|likely`), "Probability"},
	{regexp.MustCompile(`(?i)dynamic programming|\bdp\b|memoiz`), "Dynamic Programming"},
	{regexp.MustCompile(`(?i)greedy`), "Greedy"},
	{regexp.MustCompile(`(?i)graph|\bbfs\b|\bdfs\b|tree travers`), "Graphs"},
	{regexp.MustCompile(`(?i)array`), "Arrays"},
	{regexp.MustCompile(`(?i)string`), "Strings"},
}

// InferSubtopic derives a subtopic label from question text. When no pattern
// matches it falls back to the supplied topic, or "General" when that is
// empty too.
func InferSubtopic(text, fallbackTopic string) string {
	for _, p := range subtopicPatterns {
		if p.re.MatchString(text) {
			return p.label
		}
	}
	if fallbackTopic != "" {
		return fallbackTopic
	}
	return "General"
}

// AggregateSubtopics buckets one attempt's questions by subtopic. An explicit
// subtopic tag on the question wins over text inference. The result order is
// unspecified; callers sort as needed.
func AggregateSubtopics(questions []AnsweredQuestion, fallbackTopic string) []SubtopicStat {
	acc := map[string]*topicAccumulator{}
	var order []string

	for _, q := range questions {
		label := q.Subtopic
		if label == "" {
			label = InferSubtopic(q.Text, fallbackTopic)
		}
		a, ok := acc[label]
		if !ok {
			a = &topicAccumulator{}
			acc[label] = a
			order = append(order, label)
		}
		a.total++
		if q.SelectedIndex >= 0 && q.CorrectIndex >= 0 && q.SelectedIndex == q.CorrectIndex {
			a.correct++
		}
	}

	stats := make([]SubtopicStat, 0, len(order))
	for _, label := range order {
		a := acc[label]
		accuracy := 0
		if a.total > 0 {
			accuracy = int(math.Round(float64(a.correct) / float64(a.total) * 100))
		}
		stats = append(stats, SubtopicStat{
			Subtopic: label,
			Correct:  a.correct,
			Total:    a.total,
			Accuracy: accuracy,
		})
	}
	return stats
}
