// Package evaluation scores normalized predictions against human labels:
// accuracy, confusion matrix and the per-record disagreement set.
package evaluation

import (
	"log/slog"
	"sort"
	"strconv"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

type Options struct {
	Unknown UnknownPolicy
}

// Evaluate joins predictions with ground truth on input ID and scores the
// matches. Records present on only one side are excluded, not errors:
// partial ground-truth coverage is expected. Open-vocabulary tasks have no
// label space and return an error.
func Evaluate(preds []models.NormalizedPrediction, truth map[int]int, task models.TaskName, opts Options) (models.EvaluationResult, error) {
	order, names, err := labelSpace(task)
	if err != nil {
		return models.EvaluationResult{}, err
	}

	var perRecord []models.RecordScore
	var correct int

	for _, p := range preds {
		if p.Task != task {
			continue
		}
		human, ok := truth[p.InputID]
		if !ok {
			continue
		}
		if opts.Unknown == UnknownExclude && p.Label == normalize.Sentinel {
			slog.Debug("[Evaluation] Excluding uncertain prediction",
				slog.Int("input_id", p.InputID))
			continue
		}

		predicted, err := MapLabel(task, p.Label)
		if err != nil {
			return models.EvaluationResult{}, err
		}

		score := models.RecordScore{
			InputID:        p.InputID,
			PredictedLabel: predicted,
			HumanLabel:     human,
			IsWrong:        predicted != human,
		}
		if !score.IsWrong {
			correct++
		}
		perRecord = append(perRecord, score)
	}

	result := models.EvaluationResult{
		Task:      task,
		PerRecord: perRecord,
		Confusion: buildConfusion(perRecord, order, names),
	}
	if len(perRecord) > 0 {
		result.Accuracy = float64(correct) / float64(len(perRecord))
	}

	slog.Info("[Evaluation] Scored task",
		slog.String("task", string(task)),
		slog.Int("joined", len(perRecord)),
		slog.Float64("accuracy", result.Accuracy))
	return result, nil
}

// buildConfusion counts human (row) vs predicted (column) over the union of
// label values observed on either side, in the task's canonical order.
func buildConfusion(perRecord []models.RecordScore, order []int, names map[int]string) models.ConfusionMatrix {
	observed := make(map[int]struct{}, len(order))
	for _, rec := range perRecord {
		observed[rec.HumanLabel] = struct{}{}
		observed[rec.PredictedLabel] = struct{}{}
	}

	var labels []int
	index := make(map[int]int, len(observed))
	for _, label := range order {
		if _, ok := observed[label]; ok {
			index[label] = len(labels)
			labels = append(labels, label)
		}
	}
	// ground truth outside the canonical space still gets a row so the
	// matrix totals stay equal to the joined-record count
	var extra []int
	for label := range observed {
		if _, ok := index[label]; !ok {
			extra = append(extra, label)
		}
	}
	sort.Ints(extra)
	for _, label := range extra {
		index[label] = len(labels)
		labels = append(labels, label)
	}

	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	for _, rec := range perRecord {
		counts[index[rec.HumanLabel]][index[rec.PredictedLabel]]++
	}

	labelNames := make([]string, len(labels))
	for i, label := range labels {
		if name, ok := names[label]; ok {
			labelNames[i] = name
		} else {
			labelNames[i] = strconv.Itoa(label)
		}
	}

	return models.ConfusionMatrix{Labels: labels, Names: labelNames, Counts: counts}
}
