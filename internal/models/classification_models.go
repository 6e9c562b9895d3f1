package models

// InputRecord is one post/comment pair prepared by the collection layer.
// Text carries both halves of the thread, tagged with role markers.
type InputRecord struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type TaskName string

const (
	TaskSentiment TaskName = "sentiment"
	TaskEmotion   TaskName = "emotion"
	TaskRespond   TaskName = "respond"
)

// TaskDefinition describes one classification task. AllowedLabels is nil for
// open-vocabulary tasks.
type TaskDefinition struct {
	Name          TaskName `json:"name"`
	Instruction   string   `json:"instruction"`
	AllowedLabels []string `json:"allowed_labels,omitempty"`
}

// Open reports whether the task has no closed label set.
func (t TaskDefinition) Open() bool {
	return len(t.AllowedLabels) == 0
}

// RawPrediction is the untouched model reply for one (input, task) pair.
type RawPrediction struct {
	InputID int      `json:"input_id"`
	Task    TaskName `json:"task"`
	RawText string   `json:"raw_text"`
}

// NormalizedPrediction is a RawPrediction after cleanup, ready for scoring.
type NormalizedPrediction struct {
	InputID int      `json:"input_id"`
	Task    TaskName `json:"task"`
	Label   string   `json:"label"`
}
