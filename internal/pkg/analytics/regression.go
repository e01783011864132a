package analytics

import "math"

// Trend is the least-squares line fitted through a score timeline.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// LinearRegression fits an ordinary least-squares line through the timeline.
// Fewer than two points degrade to a flat line at the sole score (or zero for
// an empty timeline).
func LinearRegression(points []ScorePoint) Trend {
	n := len(points)
	if n == 0 {
		return Trend{}
	}
	if n == 1 {
		return Trend{Intercept: points[0].Score}
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.Index)
		sumX += x
		sumY += p.Score
		sumXY += x * p.Score
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		denom = 1
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn
	return Trend{Slope: slope, Intercept: intercept}
}

// Predict evaluates the fitted line at x.
func (t Trend) Predict(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// PredictedNextScore predicts the score of the attempt following the timeline,
// clamped to [0,100] and rounded. An empty timeline or a non-finite prediction
// falls back to 50.
func PredictedNextScore(points []ScorePoint) float64 {
	if len(points) == 0 {
		return 50
	}
	trend := LinearRegression(points)
	next := trend.Predict(float64(len(points) + 1))
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return 50
	}
	return math.Round(clamp(next, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
