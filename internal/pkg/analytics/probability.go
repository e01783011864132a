package analytics

import "math"

// Hand-calibrated weights of the pass-probability logit. These were tuned by
// inspection against historical cohorts, not fitted from training data; keep
// them in sync with any frontend copy that explains the prediction.
const (
	scoreCenter = 50.0
	scoreScale  = 20.0
	slopeScale  = 0.1
	scoreWeight = 0.8
	slopeWeight = 0.4
)

// PassProbability maps the current score (0-100) and the timeline slope to a
// pass likelihood in (0,1) through a logistic function. A score of 50 with a
// flat trend sits exactly at 0.5.
func PassProbability(currentScore, trendSlope float64) float64 {
	s := (currentScore - scoreCenter) / scoreScale
	m := trendSlope / slopeScale
	z := scoreWeight*s + slopeWeight*m
	return 1.0 / (1.0 + math.Exp(-z))
}
