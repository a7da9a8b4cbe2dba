package engine

import (
	"encoding/json"

	"github.com/oraculo-app/oraculo-sync/models"
)

// Collection names the estimator recognizes. Anything else in a document is
// ignored by scoring but still synchronized.
const (
	collectionTasks    = "tasks"
	collectionProjects = "projects"
	collectionHabits   = "habits"
	collectionJournal  = "journal"
	collectionValues   = "values"
)

// Weights assigns a per-item score to each recognized collection. Content
// requiring deliberate user authorship (journal entries, custom projects,
// graduated habits) weighs more than transient or derived items, so that a
// document's score tracks how much work would be lost if it were discarded.
//
// The absolute numbers are empirical; only the proportions matter. All
// weights must be non-negative to keep the score monotonic in content.
type Weights struct {
	JournalEntry   int
	CustomProject  int
	CoreValue      int
	GraduatedHabit int
	Habit          int
	Task           int
}

// DefaultWeights returns the weighting used by the original web client.
func DefaultWeights() Weights {
	return Weights{
		JournalEntry:   3,
		CustomProject:  3,
		CoreValue:      2,
		GraduatedHabit: 3,
		Habit:          1,
		Task:           1,
	}
}

// Estimator computes a scalar richness score for a state document. The
// score is a heuristic signal for detecting suspiciously empty or truncated
// documents, never a correctness oracle: it is purely structural, tolerates
// unknown and missing keys, and a document with no recognizable content
// scores exactly 0.
type Estimator struct {
	weights Weights
}

// NewEstimator constructs an Estimator with the given weights.
func NewEstimator(weights Weights) *Estimator {
	return &Estimator{weights: weights}
}

// Score returns the weighted item count of doc. Adding a recognized item
// never decreases the result.
func (e *Estimator) Score(doc *models.StateDocument) int {
	if doc == nil {
		return 0
	}

	score := e.weights.Task * countItems(doc.Collection(collectionTasks))
	score += e.weights.CustomProject * countItems(doc.Collection(collectionProjects))
	score += e.weights.JournalEntry * countItems(doc.Collection(collectionJournal))
	score += e.weights.CoreValue * countItems(doc.Collection(collectionValues))

	plain, graduated := countHabits(doc.Collection(collectionHabits))
	score += e.weights.Habit*plain + e.weights.GraduatedHabit*graduated

	return score
}

// countItems counts the elements of a raw JSON array. A missing,
// non-array or malformed payload counts as zero.
func countItems(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}

	return len(items)
}

// countHabits splits the habits collection into plain and graduated counts.
// Habits that cannot be decoded are counted as plain so partially malformed
// content still contributes to the score.
func countHabits(raw json.RawMessage) (plain, graduated int) {
	if len(raw) == 0 {
		return 0, 0
	}

	var habits []struct {
		Graduated bool `json:"graduated"`
	}
	if err := json.Unmarshal(raw, &habits); err != nil {
		return countItems(raw), 0
	}

	for _, h := range habits {
		if h.Graduated {
			graduated++
		} else {
			plain++
		}
	}

	return plain, graduated
}
