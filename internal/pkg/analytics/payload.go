package analytics

// CategoryScore is one named score for the dashboard's category chart.
type CategoryScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// RadarEntry is one axis of the readiness radar chart.
type RadarEntry struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Analysis is the payload consumed by the student report and dashboard pages.
type Analysis struct {
	PredictedScore  float64          `json:"predictedScore"`
	PassProbability float64          `json:"passProbability"`
	WeakTopics      []WeakTopicEntry `json:"weakTopics"`
	CategoryScores  []CategoryScore  `json:"categoryScores"`
	RadarData       []RadarEntry     `json:"radarData"`
	PerSubtopic     []SubtopicStat   `json:"perSubtopic,omitempty"`
}

// BuildAnalysis packages the computed pieces into the report payload: the five
// weakest topics as category scores and a fixed three-axis radar (recent
// average of the last five attempts, predicted next score, pass likelihood).
func BuildAnalysis(points []ScorePoint, weakTopics []WeakTopicEntry, predicted, passProbability float64, perSubtopic []SubtopicStat) Analysis {
	topWeak := weakTopics
	if len(topWeak) > 5 {
		topWeak = topWeak[:5]
	}
	categories := make([]CategoryScore, 0, len(topWeak))
	for _, w := range topWeak {
		categories = append(categories, CategoryScore{
			Name:  w.Domain + ":" + w.Topic,
			Score: w.Accuracy,
		})
	}

	radar := []RadarEntry{
		{Category: "Recent Average", Value: recentAverage(points, 5)},
		{Category: "Predicted Score", Value: clamp(predicted, 0, 100)},
		{Category: "Pass Likelihood", Value: passProbability * 100},
	}

	return Analysis{
		PredictedScore:  predicted,
		PassProbability: passProbability,
		WeakTopics:      weakTopics,
		CategoryScores:  categories,
		RadarData:       radar,
		PerSubtopic:     perSubtopic,
	}
}

func recentAverage(points []ScorePoint, window int) float64 {
	if len(points) == 0 {
		return 0
	}
	start := len(points) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	recent := points[start:]
	for _, p := range recent {
		sum += p.Score
	}
	return sum / float64(len(recent))
}
