package models

import "sort"

// SkippedInput records an input the orchestrator never sent to the provider,
// usually because prompt construction failed.
type SkippedInput struct {
	InputID int    `json:"input_id"`
	Reason  string `json:"reason"`
}

// BatchRun is the complete outcome of one batch over the inputs. It is a
// plain value owned by the caller; nothing in the pipeline mutates it after
// RunBatch returns.
type BatchRun struct {
	// Predictions maps input ID -> task -> raw model reply. Inputs abandoned
	// after a provider failure, and inputs past the abort point, are absent.
	Predictions map[int]map[TaskName]RawPrediction `json:"predictions"`
	// Failures counts inputs abandoned on provider errors.
	Failures int `json:"failures"`
	// Skipped holds inputs that never reached the provider.
	Skipped []SkippedInput `json:"skipped,omitempty"`
	// Aborted is set when the failure threshold stopped the batch early.
	Aborted bool `json:"aborted"`
}

// TaskPredictions flattens the run into scoring order for one task, sorted
// by input ID so repeated runs produce the same sequence.
func (b BatchRun) TaskPredictions(task TaskName) []RawPrediction {
	ids := make([]int, 0, len(b.Predictions))
	for id := range b.Predictions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	preds := make([]RawPrediction, 0, len(ids))
	for _, id := range ids {
		if p, ok := b.Predictions[id][task]; ok {
			preds = append(preds, p)
		}
	}
	return preds
}
