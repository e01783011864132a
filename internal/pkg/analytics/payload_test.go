package analytics

import "testing"

func TestBuildAnalysis(t *testing.T) {
	points := []ScorePoint{
		{Index: 1, Score: 20}, {Index: 2, Score: 40}, {Index: 3, Score: 50},
		{Index: 4, Score: 60}, {Index: 5, Score: 70}, {Index: 6, Score: 80},
	}
	weak := []WeakTopicEntry{
		{Domain: "dsa", Topic: "graphs", Accuracy: 20, Count: 10},
		{Domain: "dsa", Topic: "dp", Accuracy: 30, Count: 10},
		{Domain: "cs", Topic: "os", Accuracy: 40, Count: 10},
		{Domain: "quiz", Topic: "sql", Accuracy: 50, Count: 10},
		{Domain: "aptitude", Topic: "ratios", Accuracy: 60, Count: 10},
		{Domain: "cs", Topic: "dbms", Accuracy: 70, Count: 10},
	}

	a := BuildAnalysis(points, weak, 90, 0.75, nil)

	if len(a.CategoryScores) != 5 {
		t.Fatalf("got %d category scores, want top 5", len(a.CategoryScores))
	}
	if a.CategoryScores[0].Name != "dsa:graphs" || a.CategoryScores[0].Score != 20 {
		t.Errorf("first category = %+v, want weakest dsa:graphs at 20", a.CategoryScores[0])
	}

	if len(a.RadarData) != 3 {
		t.Fatalf("got %d radar entries, want 3", len(a.RadarData))
	}
	// last five scores: 40, 50, 60, 70, 80
	if a.RadarData[0].Value != 60 {
		t.Errorf("recent average = %v, want 60", a.RadarData[0].Value)
	}
	if a.RadarData[1].Value != 90 {
		t.Errorf("predicted axis = %v, want 90", a.RadarData[1].Value)
	}
	if a.RadarData[2].Value != 75 {
		t.Errorf("pass likelihood axis = %v, want 75", a.RadarData[2].Value)
	}

	if len(a.WeakTopics) != 6 {
		t.Errorf("weakTopics passthrough lost entries: %d of 6", len(a.WeakTopics))
	}
}

func TestBuildAnalysis_Empty(t *testing.T) {
	a := BuildAnalysis(nil, nil, 50, 0.5, nil)
	if a.RadarData[0].Value != 0 {
		t.Errorf("recent average of empty timeline = %v, want 0", a.RadarData[0].Value)
	}
	if len(a.CategoryScores) != 0 {
		t.Errorf("got %d category scores, want none", len(a.CategoryScores))
	}
}

func TestBuildAnalysis_ClampsPredictedAxis(t *testing.T) {
	a := BuildAnalysis(nil, nil, 130, 0.9, nil)
	if a.RadarData[1].Value != 100 {
		t.Errorf("predicted axis = %v, want clamp to 100", a.RadarData[1].Value)
	}
}
