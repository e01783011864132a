package analytics

import "testing"

func TestInferSubtopic_FirstMatchWins(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{"ratio", "If the ratio of boys to girls is 3:2, how many boys are there?", "Ratios"},
		{"percent sign", "What is 15% of 240?", "Percentages"},
		{"time and work", "A and B finish a job in 6 days. What is their combined work rate?", "Time & Work"},
		{"permutation", "In how many ways can 5 books be arranged? This is a permutation problem.", "Permutations"},
		{"probability", "What is the probability of drawing two aces?", "Probability"},
		{"dp abbreviation", "What is the time complexity of this DP solution?", "Dynamic Programming"},
		{"greedy", "Does a greedy strategy always yield the optimum here?", "Greedy"},
		{"graphs via bfs", "Which traversal does BFS perform on this structure?", "Graphs"},
		{"arrays", "Reverse the array in place.", "Arrays"},
		{"strings", "Count the vowels in the given string.", "Strings"},
		// "percent" is checked before "probability": first matching pattern wins
		{"ordered precedence", "What percent chance does the event have?", "Percentages"},
		{"combination", "How many combinations of toppings are possible?", "Combinations"},
		{"chosen committee", "How many ways can a committee of 2 be chosen from 5 people?", "Combinations"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferSubtopic(tc.text, ""); got != tc.want {
				t.Errorf("InferSubtopic(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestInferSubtopic_Fallback(t *testing.T) {
	if got := InferSubtopic("Solve for x.", "algebra"); got != "algebra" {
		t.Errorf("fallback to topic: got %q, want algebra", got)
	}
	if got := InferSubtopic("Solve for x.", ""); got != "General" {
		t.Errorf("fallback without topic: got %q, want General", got)
	}
	// SQL keywords are not combinatorics vocabulary.
	if got := InferSubtopic("What does SELECT name FROM users return?", "databases"); got != "databases" {
		t.Errorf("sql text: got %q, want the databases fallback", got)
	}
}

func TestAggregateSubtopics(t *testing.T) {
	questions := []AnsweredQuestion{
		{Text: "Reverse the array in place.", SelectedIndex: 1, CorrectIndex: 1},
		{Text: "Rotate the array by k.", SelectedIndex: 0, CorrectIndex: 2},
		{Subtopic: "Recursion", Text: "anything", SelectedIndex: 3, CorrectIndex: 3},
		// unanswered: counts toward total, never correct
		{Text: "Find the max subarray.", SelectedIndex: -1, CorrectIndex: 0},
	}

	stats := AggregateSubtopics(questions, "dsa")

	byLabel := map[string]SubtopicStat{}
	for _, s := range stats {
		byLabel[s.Subtopic] = s
	}

	arrays, ok := byLabel["Arrays"]
	if !ok {
		t.Fatal("missing Arrays bucket")
	}
	if arrays.Correct != 1 || arrays.Total != 3 || arrays.Accuracy != 33 {
		t.Errorf("Arrays = %+v, want correct 1 total 3 accuracy 33", arrays)
	}

	recursion, ok := byLabel["Recursion"]
	if !ok {
		t.Fatal("explicit subtopic tag was not preferred")
	}
	if recursion.Correct != 1 || recursion.Total != 1 || recursion.Accuracy != 100 {
		t.Errorf("Recursion = %+v, want correct 1 total 1 accuracy 100", recursion)
	}
}

func TestAggregateSubtopics_UnknownCorrectIndex(t *testing.T) {
	questions := []AnsweredQuestion{
		{Text: "Count vowels in the string.", SelectedIndex: 0, CorrectIndex: -1},
	}
	stats := AggregateSubtopics(questions, "")
	if len(stats) != 1 {
		t.Fatalf("got %d stats, want 1", len(stats))
	}
	if stats[0].Correct != 0 || stats[0].Total != 1 {
		t.Errorf("stat = %+v, want counted toward total only", stats[0])
	}
}
