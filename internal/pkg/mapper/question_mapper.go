package mapper

import (
	"encoding/json"
	"fmt"

	dbEntity "github.com/examind/examind-be/internal/entity"
	"github.com/examind/examind-be/internal/pkg/analytics"
)

// ConvertToPoolQuestion converts a bank row into a sampler pool question.
// Options are stored as a JSON array in the row.
func ConvertToPoolQuestion(row dbEntity.BankQuestion) (analytics.PoolQuestion, error) {
	var options []string
	if err := json.Unmarshal([]byte(row.Options), &options); err != nil {
		return analytics.PoolQuestion{}, fmt.Errorf("invalid options json: %w", err)
	}
	if len(options) < 2 {
		return analytics.PoolQuestion{}, fmt.Errorf("question needs at least 2 options, got %d", len(options))
	}

	return analytics.PoolQuestion{
		Text:        row.Text,
		Options:     options,
		Answer:      row.Answer,
		Explanation: row.Explanation,
		Subtopic:    row.Subtopic,
		Difficulty:  row.Difficulty,
	}, nil
}
