package evaluation

import (
	"fmt"

	"commenteval/internal/models"
)

// UnknownPolicy controls how the "?" sentinel is scored. The reference
// behavior folds it into the task's zero class (Neutral / No); excluding it
// from scoring is available for callers who want the sentinel kept apart.
type UnknownPolicy int

const (
	UnknownFoldToZero UnknownPolicy = iota
	UnknownExclude
)

// canonical label orderings, declared per task rather than inferred from
// the data
var (
	sentimentOrder = []int{-1, 0, 1}
	respondOrder   = []int{0, 1}

	sentimentNames = map[int]string{-1: "Negative", 0: "Neutral", 1: "Positive"}
	respondNames   = map[int]string{0: "No", 1: "Yes"}
)

func labelSpace(task models.TaskName) (order []int, names map[int]string, err error) {
	switch task {
	case models.TaskSentiment:
		return sentimentOrder, sentimentNames, nil
	case models.TaskRespond:
		return respondOrder, respondNames, nil
	default:
		return nil, nil, fmt.Errorf("evaluation: task %q has no closed label space", task)
	}
}

// MapLabel maps a normalized label string onto the task's integer label
// space. Unrecognized strings, including the sentinel, map to 0.
func MapLabel(task models.TaskName, label string) (int, error) {
	switch task {
	case models.TaskSentiment:
		switch label {
		case "Positive":
			return 1, nil
		case "Negative":
			return -1, nil
		default:
			// "Neutral", the sentinel and anything unrecognized
			return 0, nil
		}
	case models.TaskRespond:
		// exact, case-sensitive match
		if label == "Yes" {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("evaluation: task %q has no label mapping", task)
	}
}
