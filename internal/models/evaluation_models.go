package models

// RecordScore is the per-record outcome of scoring one joined prediction.
type RecordScore struct {
	InputID        int  `json:"input_id"`
	PredictedLabel int  `json:"predicted_label"`
	HumanLabel     int  `json:"human_label"`
	IsWrong        bool `json:"is_wrong"`
}

// ConfusionMatrix counts human label (row) vs predicted label (column) over
// an explicit, task-declared label ordering.
type ConfusionMatrix struct {
	Labels []int    `json:"labels"`
	Names  []string `json:"names"`
	Counts [][]int  `json:"counts"`
}

// Total sums every cell; it equals the number of joined records.
func (m ConfusionMatrix) Total() int {
	var total int
	for _, row := range m.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// EvaluationResult is recomputed on demand and never mutated in place.
type EvaluationResult struct {
	Task      TaskName        `json:"task"`
	Accuracy  float64         `json:"accuracy"`
	PerRecord []RecordScore   `json:"per_record"`
	Confusion ConfusionMatrix `json:"confusion"`
}

// Disagreements returns only the records the model got wrong.
func (r EvaluationResult) Disagreements() []RecordScore {
	var wrong []RecordScore
	for _, rec := range r.PerRecord {
		if rec.IsWrong {
			wrong = append(wrong, rec)
		}
	}
	return wrong
}
