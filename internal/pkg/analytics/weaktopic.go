package analytics

import (
	"math"
	"sort"
	"strings"
)

// TopicResult is one practice or aptitude attempt folded into the weak-topic
// aggregation: correct answers out of total questions for one topic.
type TopicResult struct {
	Domain  string
	Topic   string
	Correct int
	Total   int
}

// QuizResult is one quiz attempt: per-question correctness flags for a topic.
type QuizResult struct {
	Topic   string
	Answers []bool
}

// WeakTopicEntry is the aggregated accuracy of one (domain, topic) pair.
type WeakTopicEntry struct {
	Domain   string `json:"domain"`
	Topic    string `json:"topic"`
	Accuracy int    `json:"accuracy"`
	Count    int    `json:"count"`
}

type topicAccumulator struct {
	correct int
	total   int
}

// AggregateWeakTopics folds practice, quiz and aptitude history into
// per-(domain, topic) accuracy, sorted ascending so the weakest topic is
// first. Formal exam attempts feed the score timeline only, not this
// breakdown. The first-element-is-weakest ordering is a contract relied on by
// dashboard and recommendation consumers.
func AggregateWeakTopics(practice []TopicResult, quiz []QuizResult, aptitude []TopicResult) []WeakTopicEntry {
	acc := map[string]*topicAccumulator{}
	var keys []string

	add := func(domain, topic string, correct, total int) {
		key := NormalizeTopic(domain) + ":" + NormalizeTopic(topic)
		a, ok := acc[key]
		if !ok {
			a = &topicAccumulator{}
			acc[key] = a
			keys = append(keys, key)
		}
		a.correct += correct
		a.total += total
	}

	for _, p := range practice {
		add(p.Domain, p.Topic, p.Correct, p.Total)
	}
	for _, q := range quiz {
		correct := 0
		for _, ok := range q.Answers {
			if ok {
				correct++
			}
		}
		add("quiz", q.Topic, correct, len(q.Answers))
	}
	for _, a := range aptitude {
		add("aptitude", a.Topic, a.Correct, a.Total)
	}

	entries := make([]WeakTopicEntry, 0, len(keys))
	for _, key := range keys {
		a := acc[key]
		accuracy := 0
		if a.total > 0 {
			accuracy = int(math.Round(float64(a.correct) / float64(a.total) * 100))
		}
		domain, topic, _ := strings.Cut(key, ":")
		entries = append(entries, WeakTopicEntry{
			Domain:   domain,
			Topic:    topic,
			Accuracy: accuracy,
			Count:    a.total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Accuracy < entries[j].Accuracy
	})
	return entries
}

// MasteryFor looks up the student's accuracy for the assignment's domain and
// topic. An exact domain+topic match wins; a topic-only match is the
// fallback; no history at all defaults to 60.
func MasteryFor(entries []WeakTopicEntry, domain, topic string) float64 {
	wantDomain := NormalizeTopic(domain)
	wantTopic := NormalizeTopic(topic)

	for _, e := range entries {
		if NormalizeTopic(e.Domain) == wantDomain && NormalizeTopic(e.Topic) == wantTopic {
			return float64(e.Accuracy)
		}
	}
	for _, e := range entries {
		if NormalizeTopic(e.Topic) == wantTopic {
			return float64(e.Accuracy)
		}
	}
	return 60
}

// NormalizeTopic lowercases an identifier and strips every space so that
// "Dynamic Programming" and "dynamicprogramming" compare equal.
func NormalizeTopic(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}
