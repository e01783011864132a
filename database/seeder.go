package database

import (
	"encoding/json"
	"fmt"

	"github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"gorm.io/gorm"
)

type seedQuestion struct {
	Domain      string
	Topic       string
	Text        string
	Options     []string
	Answer      string
	Explanation string
	Subtopic    string
	Difficulty  string
}

// Difficulty and subtopic tags are deliberately missing on some rows so the
// text-based classifiers get exercised on real data.
var questionBankData = []seedQuestion{
	// DSA
	{Domain: "dsa", Topic: "arrays", Text: "What is the index of the first element in a zero-indexed array?", Options: []string{"0", "1", "-1", "Depends on the language"}, Answer: "0", Explanation: "Zero-indexed arrays start counting positions from 0.", Subtopic: "Arrays", Difficulty: "beginner"},
	{Domain: "dsa", Topic: "arrays", Text: "Given a sorted array, which search runs in O(log n)?", Options: []string{"Linear search", "Binary search", "Jump search only", "Hash lookup"}, Answer: "Binary search", Explanation: "Binary search halves the candidate range each step.", Subtopic: "Arrays"},
	{Domain: "dsa", Topic: "arrays", Text: "What is the time complexity of inserting at the front of a dynamic array?", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, Answer: "O(n)", Explanation: "Every existing element shifts one position to the right."},
	{Domain: "dsa", Topic: "strings", Text: "Which string operation checks whether a word reads the same forwards and backwards?", Options: []string{"Palindrome check", "Anagram check", "Substring search", "Tokenization"}, Answer: "Palindrome check", Explanation: "A palindrome equals its own reverse.", Subtopic: "Strings", Difficulty: "beginner"},
	{Domain: "dsa", Topic: "strings", Text: "Derive the optimal substructure for the longest common subsequence of two strings.", Options: []string{"LCS(i,j) extends LCS(i-1,j-1) when characters match", "LCS is always the shorter string", "LCS needs a suffix tree", "LCS cannot be computed exactly"}, Answer: "LCS(i,j) extends LCS(i-1,j-1) when characters match", Explanation: "On a match, the answer grows by one from the diagonal subproblem.", Subtopic: "Dynamic Programming", Difficulty: "advanced"},
	{Domain: "dsa", Topic: "graphs", Text: "Which traversal visits graph neighbors level by level?", Options: []string{"Depth-first search", "Breadth-first search", "Topological sort", "Dijkstra"}, Answer: "Breadth-first search", Explanation: "BFS expands the frontier one level at a time.", Subtopic: "Graphs"},
	{Domain: "dsa", Topic: "graphs", Text: "Prove which algorithm finds shortest paths in a weighted graph with no negative edges, and analyze its complexity with a binary heap.", Options: []string{"Dijkstra, O((V+E) log V)", "BFS, O(V+E)", "Bellman-Ford, O(VE)", "Prim, O(E log V)"}, Answer: "Dijkstra, O((V+E) log V)", Explanation: "Dijkstra with a heap relaxes each edge at logarithmic cost.", Subtopic: "Graphs", Difficulty: "advanced"},
	{Domain: "dsa", Topic: "dp", Text: "What does memoization store in a dynamic programming solution?", Options: []string{"Solved subproblem results", "Raw input copies", "Random seeds", "Stack frames"}, Answer: "Solved subproblem results", Explanation: "Caching subproblem answers avoids recomputation.", Subtopic: "Dynamic Programming"},
	{Domain: "dsa", Topic: "dp", Text: "Which greedy choice fails for the 0/1 knapsack problem?", Options: []string{"Taking the highest value-per-weight item first", "Sorting items by weight", "Taking the lightest item first", "All of these can fail"}, Answer: "All of these can fail", Explanation: "0/1 knapsack needs dynamic programming, greedy orderings all have counterexamples.", Subtopic: "Greedy", Difficulty: "intermediate"},
	{Domain: "dsa", Topic: "sorting", Text: "Which sort is stable and runs in O(n log n) worst case?", Options: []string{"Quicksort", "Heapsort", "Merge sort", "Selection sort"}, Answer: "Merge sort", Explanation: "Merge sort preserves the relative order of equal keys.", Difficulty: "intermediate"},

	// CS fundamentals
	{Domain: "cs", Topic: "os", Text: "What is a context switch?", Options: []string{"Saving one process state and loading another", "Compiling a program", "Switching monitors", "A branch instruction"}, Answer: "Saving one process state and loading another", Explanation: "The scheduler swaps CPU state between processes or threads.", Difficulty: "beginner"},
	{Domain: "cs", Topic: "os", Text: "Analyze the trade-off between preemptive and cooperative scheduling for latency-sensitive workloads.", Options: []string{"Preemption bounds response time at the cost of context-switch overhead", "Cooperative scheduling always wins", "They are equivalent", "Neither affects latency"}, Answer: "Preemption bounds response time at the cost of context-switch overhead", Explanation: "Preemption guarantees a runnable task is not starved by a long-running one.", Difficulty: "advanced"},
	{Domain: "cs", Topic: "networks", Text: "Which protocol guarantees in-order delivery?", Options: []string{"UDP", "TCP", "ICMP", "ARP"}, Answer: "TCP", Explanation: "TCP sequences and acknowledges every byte.", Difficulty: "beginner"},
	{Domain: "cs", Topic: "networks", Text: "What does DNS resolve?", Options: []string{"Names to IP addresses", "Ports to processes", "MACs to names", "Routes to gateways"}, Answer: "Names to IP addresses", Explanation: "DNS maps hostnames to addresses."},
	{Domain: "cs", Topic: "databases", Text: "Which property of ACID guarantees all-or-nothing execution?", Options: []string{"Atomicity", "Consistency", "Isolation", "Durability"}, Answer: "Atomicity", Explanation: "Atomicity means a transaction either fully commits or fully rolls back.", Difficulty: "intermediate"},
	{Domain: "cs", Topic: "databases", Text: "Derive why a B-tree index keeps lookups logarithmic under heavy inserts.", Options: []string{"Node splits keep the tree balanced", "Rows are stored sorted on disk", "Hashing avoids collisions", "The optimizer rewrites queries"}, Answer: "Node splits keep the tree balanced", Explanation: "Splits propagate upward so every leaf stays at the same depth.", Difficulty: "advanced"},

	// Aptitude
	{Domain: "aptitude", Topic: "quant", Text: "A train covers 120 km in 2 hours. What is its average speed?", Options: []string{"40 km/h", "50 km/h", "60 km/h", "80 km/h"}, Answer: "60 km/h", Explanation: "Speed is distance over time, 120/2 = 60.", Subtopic: "Ratios", Difficulty: "beginner"},
	{Domain: "aptitude", Topic: "quant", Text: "What is 25% of 240?", Options: []string{"80", "60", "50", "40"}, Answer: "60", Explanation: "A quarter of 240 is 60.", Subtopic: "Percentages", Difficulty: "beginner"},
	{Domain: "aptitude", Topic: "quant", Text: "If 6 workers finish a job in 12 days, how many days do 9 workers need at the same rate?", Options: []string{"6", "8", "9", "10"}, Answer: "8", Explanation: "Work is constant, 6*12 = 9*d gives d = 8.", Subtopic: "Time & Work"},
	{Domain: "aptitude", Topic: "quant", Text: "The ratio of boys to girls is 3:2 in a class of 40. How many girls are there?", Options: []string{"16", "18", "20", "24"}, Answer: "16", Explanation: "Two of five parts of 40 is 16.", Subtopic: "Ratios"},
	{Domain: "aptitude", Topic: "probability", Text: "What is the probability of rolling an even number on a fair six-sided die?", Options: []string{"1/6", "1/3", "1/2", "2/3"}, Answer: "1/2", Explanation: "Three of the six faces are even.", Subtopic: "Probability", Difficulty: "beginner"},
	{Domain: "aptitude", Topic: "probability", Text: "In how many ways can 3 people be arranged in a row?", Options: []string{"3", "6", "9", "12"}, Answer: "6", Explanation: "Permutations of 3 distinct people is 3! = 6.", Subtopic: "Permutations"},
	{Domain: "aptitude", Topic: "probability", Text: "How many ways can a committee of 2 be chosen from 5 people?", Options: []string{"10", "20", "25", "5"}, Answer: "10", Explanation: "C(5,2) = 10 since order does not matter.", Subtopic: "Combinations", Difficulty: "intermediate"},
	{Domain: "aptitude", Topic: "probability", Text: "Prove the expected number of coin flips needed to see the first head with a fair coin, then evaluate it.", Options: []string{"1", "2", "4", "It diverges"}, Answer: "2", Explanation: "The geometric distribution with p = 1/2 has mean 1/p = 2.", Subtopic: "Probability", Difficulty: "advanced"},

	// Reasoning
	{Domain: "reasoning", Topic: "verbal", Text: "Pick the word most opposite in meaning to 'scarce'.", Options: []string{"Rare", "Abundant", "Sparse", "Brief"}, Answer: "Abundant", Explanation: "Scarce means in short supply, abundant means plentiful.", Difficulty: "beginner"},
	{Domain: "reasoning", Topic: "verbal", Text: "Complete the analogy. Author is to book as composer is to what?", Options: []string{"Song", "Stage", "Orchestra", "Pen"}, Answer: "Song", Explanation: "A composer creates a song the way an author creates a book."},
	{Domain: "reasoning", Topic: "logical", Text: "All cats are animals. Some animals are wild. Which conclusion must be true?", Options: []string{"All cats are wild", "Some cats are wild", "All cats are animals", "No cats are wild"}, Answer: "All cats are animals", Explanation: "Only the restated premise is guaranteed.", Difficulty: "intermediate"},
	{Domain: "reasoning", Topic: "logical", Text: "What comes next in the series 2, 6, 12, 20, 30, ...?", Options: []string{"40", "42", "44", "48"}, Answer: "42", Explanation: "Differences grow by 2 each step, so add 12.", Difficulty: "intermediate"},
	{Domain: "reasoning", Topic: "logical", Text: "Five friends sit in a row. A is left of B, C is right of D, and E sits in the middle. Derive who cannot sit at either end.", Options: []string{"A", "B", "E", "D"}, Answer: "E", Explanation: "The middle seat is fixed for E by the constraints.", Difficulty: "advanced"},
	{Domain: "reasoning", Topic: "verbal", Text: "Choose the correctly spelled word.", Options: []string{"Occurence", "Occurrence", "Ocurrence", "Occurrance"}, Answer: "Occurrence", Explanation: "Occurrence doubles both the c and the r.", Difficulty: "beginner"},
}

// SeedQuestionBank loads the starter question bank if the table is empty.
func SeedQuestionBank(db *gorm.DB) error {
	var count int64
	db.Model(&entity.BankQuestion{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, q := range questionBankData {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options for %q: %w", q.Text, err)
		}

		row := entity.BankQuestion{
			Domain:      q.Domain,
			Topic:       analytics.NormalizeTopic(q.Topic),
			Text:        q.Text,
			Options:     string(optionsJSON),
			Answer:      q.Answer,
			Explanation: q.Explanation,
			Subtopic:    q.Subtopic,
			Difficulty:  q.Difficulty,
		}

		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Text, err)
		}
	}

	return nil
}
