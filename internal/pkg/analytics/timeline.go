package analytics

import (
	"math"
	"sort"
	"time"
)

// AttemptRecord is the normalized view of one historical attempt, regardless
// of which kind (exam, practice, quiz, aptitude) produced it.
type AttemptRecord struct {
	Domain     string
	Topic      string
	Score      float64
	Total      int
	Percent    float64
	HasPercent bool
	CreatedAt  time.Time
}

// ScorePoint is one entry of the chronological score timeline.
type ScorePoint struct {
	Index int     `json:"sequenceIndex"`
	Score float64 `json:"score"`
}

// BuildTimeline converts attempt history into a chronological sequence of
// score points with 1-based sequence indexes. Attempts of every domain
// contribute to the same line: the timeline tracks overall readiness, not
// per-subject progress.
func BuildTimeline(attempts []AttemptRecord) []ScorePoint {
	sorted := make([]AttemptRecord, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]ScorePoint, 0, len(sorted))
	for i, a := range sorted {
		points = append(points, ScorePoint{Index: i + 1, Score: percentScore(a)})
	}
	return points
}

func percentScore(a AttemptRecord) float64 {
	if a.HasPercent {
		return a.Percent
	}
	total := a.Total
	if total <= 0 {
		total = 1
	}
	return math.Round(a.Score / float64(total) * 100)
}
